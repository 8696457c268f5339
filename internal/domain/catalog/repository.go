package catalog

import (
	"context"
	"fmt"

	"pet-care-dashboard/internal/domain/pets"
)

type Repository interface {
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
}

// Cache guarda listados ya filtrados. Un fallo de cache nunca corta el request.
type Cache interface {
	GetList(ctx context.Context, key string) ([]Product, bool, error)
	SetList(ctx context.Context, key string, items []Product) error
	Invalidate(ctx context.Context) error
}

type ListFilter struct {
	Kind    Kind
	PetType pets.PetType
	InStock *bool
}

func (f ListFilter) Matches(p Product) bool {
	if f.Kind != "" && p.Kind != f.Kind {
		return false
	}
	if f.PetType != "" && !p.For(f.PetType) {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// CacheKey identifica el listado dentro de la cache.
func (f ListFilter) CacheKey() string {
	stock := "any"
	if f.InStock != nil {
		stock = fmt.Sprintf("%t", *f.InStock)
	}
	return fmt.Sprintf("kind=%s:pet=%s:stock=%s", f.Kind, f.PetType, stock)
}
