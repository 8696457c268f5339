package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Pet, error)
}

// ListFilter: campos vacíos = sin filtro.
type ListFilter struct {
	Type  PetType
	Query string
}

// Matches aplica el filtro en memoria (los repos SQL lo traducen a WHERE).
func (f ListFilter) Matches(p Pet) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if q := normalize(f.Query); q != "" {
		hay := normalize(p.Name + " " + p.Breed)
		if !contains(hay, q) {
			return false
		}
	}
	return true
}
