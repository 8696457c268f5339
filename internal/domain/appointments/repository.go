package appointments

import (
	"context"
	"strings"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Appointment, error)
}

type ListFilter struct {
	Date    *time.Time
	Type    Type
	PetName string
}

func (f ListFilter) Matches(a Appointment) bool {
	if f.Date != nil && len(OnDate([]Appointment{a}, *f.Date)) == 0 {
		return false
	}
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if p := strings.TrimSpace(f.PetName); p != "" && !strings.EqualFold(a.PetName, p) {
		return false
	}
	return true
}
