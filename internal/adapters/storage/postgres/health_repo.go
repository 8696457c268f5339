package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"pet-care-dashboard/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

// recordDetails es lo que va en la columna JSONB details.
type recordDetails struct {
	Weight      *health.WeightDetail      `json:"weight,omitempty"`
	Diet        *health.DietDetail        `json:"diet,omitempty"`
	Exercise    *health.ExerciseDetail    `json:"exercise,omitempty"`
	Measurement *health.MeasurementDetail `json:"measurement,omitempty"`
}

const recordColumns = `
	id, pet_id,
	kind, recorded_on, recorded_at,
	notes, recorded_by, details`

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	details, err := json.Marshal(recordDetails{
		Weight:      rec.Weight,
		Diet:        rec.Diet,
		Exercise:    rec.Exercise,
		Measurement: rec.Measurement,
	})
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_records (`+recordColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID,
		rec.PetID,
		string(rec.Kind),
		rec.RecordedOn,
		rec.RecordedAt,
		rec.Notes,
		rec.RecordedBy,
		string(details),
	)
	return err
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Record{}, health.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM health_records WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return health.Record{}, health.ErrNotFound
	}
	return rec, err
}

func (r *HealthRepo) ListByPet(ctx context.Context, petID string, filter health.ListFilter) ([]health.Record, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []health.Record{}, nil
	}

	ph := &placeholders{}
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + recordColumns + ` FROM health_records WHERE pet_id = ` + ph.add(petID))

	if len(filter.Kinds) > 0 {
		in := make([]string, 0, len(filter.Kinds))
		for _, k := range filter.Kinds {
			in = append(in, ph.add(string(k)))
		}
		sb.WriteString(" AND kind IN (" + strings.Join(in, ",") + ")")
	}
	if filter.From != nil {
		sb.WriteString(" AND recorded_on >= " + ph.add(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(" AND recorded_on <= " + ph.add(*filter.To))
	}

	sb.WriteString(" ORDER BY recorded_on DESC, recorded_at DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + ph.add(filter.Limit))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), ph.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return health.ErrNotFound
	}
	return nil
}

func scanRecord(s rowScanner) (health.Record, error) {
	var rec health.Record
	var kind string
	var raw []byte
	if err := s.Scan(
		&rec.ID,
		&rec.PetID,
		&kind,
		&rec.RecordedOn,
		&rec.RecordedAt,
		&rec.Notes,
		&rec.RecordedBy,
		&raw,
	); err != nil {
		return health.Record{}, err
	}
	rec.Kind = health.Kind(kind)

	var d recordDetails
	if err := json.Unmarshal(raw, &d); err != nil {
		return health.Record{}, err
	}
	rec.Weight = d.Weight
	rec.Diet = d.Diet
	rec.Exercise = d.Exercise
	rec.Measurement = d.Measurement
	return rec, nil
}
