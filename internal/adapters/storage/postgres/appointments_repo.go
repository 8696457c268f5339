package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-dashboard/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentColumns = `
	id, owner_user_id,
	title, date, time, type,
	pet_name, provider, notes,
	created_at, updated_at`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.OwnerUserID,
		a.Title,
		a.Date,
		a.Time,
		string(a.Type),
		a.PetName,
		a.Provider,
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			title = $2,
			date = $3,
			time = $4,
			type = $5,
			pet_name = $6,
			provider = $7,
			notes = $8,
			updated_at = $9
		WHERE id = $1
	`,
		a.ID,
		a.Title,
		a.Date,
		a.Time,
		string(a.Type),
		a.PetName,
		a.Provider,
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, err
}

func (r *AppointmentsRepo) ListByOwner(ctx context.Context, ownerUserID string, filter appointments.ListFilter) ([]appointments.Appointment, error) {
	ph := &placeholders{}
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + appointmentColumns + ` FROM appointments WHERE owner_user_id = ` + ph.add(ownerUserID))

	if filter.Date != nil {
		sb.WriteString(" AND date = " + ph.add(appointments.CivilDate(*filter.Date)))
	}
	if filter.Type != "" {
		sb.WriteString(" AND type = " + ph.add(string(filter.Type)))
	}
	if p := strings.TrimSpace(filter.PetName); p != "" {
		sb.WriteString(" AND lower(pet_name) = lower(" + ph.add(p) + ")")
	}
	sb.WriteString(" ORDER BY date ASC, time ASC, created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), ph.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(s rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var typ string
	if err := s.Scan(
		&a.ID,
		&a.OwnerUserID,
		&a.Title,
		&a.Date,
		&a.Time,
		&typ,
		&a.PetName,
		&a.Provider,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.Type = appointments.Type(typ)
	a.Date = appointments.CivilDate(a.Date)
	return a, nil
}
