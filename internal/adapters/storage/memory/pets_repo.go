package memory

import (
	"context"

	"pet-care-dashboard/internal/domain/pets"
)

type petRepo struct {
	items *collection[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		items: newCollection(func(p pets.Pet) string { return p.ID }),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.items.add(p)
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	if !r.items.replace(p) {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := r.items.get(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

// ListByOwner respeta el orden de alta (no hay orden definido en la pantalla).
func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string, filter pets.ListFilter) ([]pets.Pet, error) {
	return r.items.list(func(p pets.Pet) bool {
		return p.OwnerUserID == ownerUserID && filter.Matches(p)
	}), nil
}
