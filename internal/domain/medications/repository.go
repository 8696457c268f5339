package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Medication, error)
}

type ListFilter struct {
	Active *bool
}

func (f ListFilter) Matches(m Medication) bool {
	if f.Active != nil && m.IsActive != *f.Active {
		return false
	}
	return true
}
