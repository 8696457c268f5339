package health

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

// ListFilter: Limit <= 0 significa sin límite. From/To son inclusivos sobre RecordedOn.
type ListFilter struct {
	Kinds []Kind
	From  *time.Time
	To    *time.Time
	Limit int
}

func (f ListFilter) Matches(rec Record) bool {
	if len(f.Kinds) > 0 {
		ok := false
		for _, k := range f.Kinds {
			if rec.Kind == k {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.From != nil && rec.RecordedOn.Before(*f.From) {
		return false
	}
	if f.To != nil && rec.RecordedOn.After(*f.To) {
		return false
	}
	return true
}
