package memory

import (
	"context"

	"pet-care-dashboard/internal/domain/appointments"
)

type appointmentRepo struct {
	items *collection[appointments.Appointment]
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		items: newCollection(func(a appointments.Appointment) string { return a.ID }),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	return r.items.add(a)
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	if !r.items.replace(a) {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	a, ok := r.items.get(id)
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) ListByOwner(ctx context.Context, ownerUserID string, filter appointments.ListFilter) ([]appointments.Appointment, error) {
	return r.items.list(func(a appointments.Appointment) bool {
		return a.OwnerUserID == ownerUserID && filter.Matches(a)
	}), nil
}
