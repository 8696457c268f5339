package memory

import (
	"context"

	"pet-care-dashboard/internal/domain/medications"
)

type medicationRepo struct {
	items *collection[medications.Medication]
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{
		items: newCollection(func(m medications.Medication) string { return m.ID }),
	}
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	return r.items.add(m)
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) error {
	if !r.items.replace(m) {
		return medications.ErrNotFound
	}
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return medications.ErrNotFound
	}
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	m, ok := r.items.get(id)
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, nil
}

func (r *medicationRepo) ListByOwner(ctx context.Context, ownerUserID string, filter medications.ListFilter) ([]medications.Medication, error) {
	return r.items.list(func(m medications.Medication) bool {
		return m.OwnerUserID == ownerUserID && filter.Matches(m)
	}), nil
}
