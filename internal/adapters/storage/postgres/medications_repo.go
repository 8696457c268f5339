package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-dashboard/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `
	id, owner_user_id,
	name, dosage, frequency,
	start_date, end_date, times, notes,
	is_active, last_given,
	created_at, updated_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tracker_medications (`+medicationColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		m.Dosage,
		m.Frequency,
		m.StartDate,
		toNullDate(m.EndDate),
		m.TimesString(),
		m.Notes,
		m.IsActive,
		toNullDate(m.LastGiven),
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tracker_medications
		SET
			name = $2,
			dosage = $3,
			frequency = $4,
			start_date = $5,
			end_date = $6,
			times = $7,
			notes = $8,
			is_active = $9,
			last_given = $10,
			updated_at = $11
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Dosage,
		m.Frequency,
		m.StartDate,
		toNullDate(m.EndDate),
		m.TimesString(),
		m.Notes,
		m.IsActive,
		toNullDate(m.LastGiven),
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tracker_medications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM tracker_medications WHERE id = $1`, id)
	m, err := scanMedication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, err
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string, filter medications.ListFilter) ([]medications.Medication, error) {
	ph := &placeholders{}
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + medicationColumns + ` FROM tracker_medications WHERE owner_user_id = ` + ph.add(ownerUserID))

	if filter.Active != nil {
		sb.WriteString(" AND is_active = " + ph.add(*filter.Active))
	}
	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), ph.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMedication(s rowScanner) (medications.Medication, error) {
	var m medications.Medication
	var times string
	var end, last sql.NullTime
	if err := s.Scan(
		&m.ID,
		&m.OwnerUserID,
		&m.Name,
		&m.Dosage,
		&m.Frequency,
		&m.StartDate,
		&end,
		&times,
		&m.Notes,
		&m.IsActive,
		&last,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	m.EndDate = fromNullTime(end)
	m.LastGiven = fromNullTime(last)

	// ya se validó al guardar; ParseTimes solo vuelve a separar
	parsed, err := medications.ParseTimes(times)
	if err != nil {
		return medications.Medication{}, err
	}
	m.Times = parsed
	return m, nil
}
