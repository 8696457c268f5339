package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-dashboard/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_user_id,
	name, breed, age, type,
	photo_url, weight, birth_date,
	microchip_id, allergies, special_needs,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Breed,
		p.Age,
		string(p.Type),
		p.PhotoURL,
		p.Weight,
		toNullDate(p.BirthDate),
		p.MicrochipID,
		p.Allergies,
		p.SpecialNeeds,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			age = $4,
			type = $5,
			photo_url = $6,
			weight = $7,
			birth_date = $8,
			microchip_id = $9,
			allergies = $10,
			special_needs = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Age,
		string(p.Type),
		p.PhotoURL,
		p.Weight,
		toNullDate(p.BirthDate),
		p.MicrochipID,
		p.Allergies,
		p.SpecialNeeds,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string, filter pets.ListFilter) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}

	ph := &placeholders{}
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + petColumns + ` FROM pets WHERE owner_user_id = ` + ph.add(ownerUserID))

	if filter.Type != "" {
		sb.WriteString(" AND type = " + ph.add(string(filter.Type)))
	}
	// q: búsqueda simple en nombre + raza
	if q := strings.TrimSpace(filter.Query); q != "" {
		n := ph.add("%" + q + "%")
		sb.WriteString(" AND (name ILIKE " + n + " OR breed ILIKE " + n + ")")
	}
	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), ph.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var typ string
	var bd sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Breed,
		&p.Age,
		&typ,
		&p.PhotoURL,
		&p.Weight,
		&bd,
		&p.MicrochipID,
		&p.Allergies,
		&p.SpecialNeeds,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.PetType(typ)
	// birth_date es DATE: pgx lo devuelve como medianoche UTC
	p.BirthDate = fromNullTime(bd)
	return p, nil
}
