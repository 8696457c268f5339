package memory

import (
	"context"

	"pet-care-dashboard/internal/domain/catalog"
)

type catalogRepo struct {
	items *collection[catalog.Product]
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		items: newCollection(func(p catalog.Product) string { return p.ID }),
	}
}

func (r *catalogRepo) Create(ctx context.Context, p catalog.Product) error {
	return r.items.add(p)
}

func (r *catalogRepo) Update(ctx context.Context, p catalog.Product) error {
	if !r.items.replace(p) {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	p, ok := r.items.get(id)
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (r *catalogRepo) List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error) {
	return r.items.list(filter.Matches), nil
}
