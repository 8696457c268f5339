package memory

import (
	"context"
	"sort"

	"pet-care-dashboard/internal/domain/health"
)

type healthRepo struct {
	items *collection[health.Record]
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		items: newCollection(func(rec health.Record) string { return rec.ID }),
	}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) error {
	return r.items.add(rec)
}

func (r *healthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	rec, ok := r.items.get(id)
	if !ok {
		return health.Record{}, health.ErrNotFound
	}
	return rec, nil
}

func (r *healthRepo) ListByPet(ctx context.Context, petID string, filter health.ListFilter) ([]health.Record, error) {
	out := r.items.list(func(rec health.Record) bool {
		return rec.PetID == petID && filter.Matches(rec)
	})

	// Orden por recorded_on desc, recorded_at desc (igual que postgres)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].RecordedOn.Equal(out[j].RecordedOn) {
			return out[i].RecordedOn.After(out[j].RecordedOn)
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *healthRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return health.ErrNotFound
	}
	return nil
}
