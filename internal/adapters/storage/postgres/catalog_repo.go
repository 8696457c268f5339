package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/domain/pets"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const productColumns = `
	id, kind,
	name, description, price, for_pet_types,
	manufacturer, in_stock, image_url,
	dosage, frequency, recommended_age, side_effects,
	created_at, updated_at`

func (r *CatalogRepo) Create(ctx context.Context, p catalog.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO catalog_products (`+productColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		string(p.Kind),
		p.Name,
		p.Description,
		p.Price,
		joinPetTypes(p.ForPetTypes),
		p.Manufacturer,
		p.InStock,
		p.ImageURL,
		p.Dosage,
		p.Frequency,
		p.RecommendedAge,
		p.SideEffects,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *CatalogRepo) Update(ctx context.Context, p catalog.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE catalog_products
		SET
			name = $2,
			description = $3,
			price = $4,
			for_pet_types = $5,
			manufacturer = $6,
			in_stock = $7,
			image_url = $8,
			dosage = $9,
			frequency = $10,
			recommended_age = $11,
			side_effects = $12,
			updated_at = $13
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		joinPetTypes(p.ForPetTypes),
		p.Manufacturer,
		p.InStock,
		p.ImageURL,
		p.Dosage,
		p.Frequency,
		p.RecommendedAge,
		p.SideEffects,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Product{}, catalog.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM catalog_products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, err
}

func (r *CatalogRepo) List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error) {
	ph := &placeholders{}
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + productColumns + ` FROM catalog_products WHERE TRUE`)

	if filter.Kind != "" {
		sb.WriteString(" AND kind = " + ph.add(string(filter.Kind)))
	}
	// for_pet_types es "Dog,Cat"
	if filter.PetType != "" {
		sb.WriteString(" AND " + ph.add(string(filter.PetType)) + " = ANY(string_to_array(for_pet_types, ','))")
	}
	if filter.InStock != nil {
		sb.WriteString(" AND in_stock = " + ph.add(*filter.InStock))
	}
	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), ph.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(s rowScanner) (catalog.Product, error) {
	var p catalog.Product
	var kind, types string
	if err := s.Scan(
		&p.ID,
		&kind,
		&p.Name,
		&p.Description,
		&p.Price,
		&types,
		&p.Manufacturer,
		&p.InStock,
		&p.ImageURL,
		&p.Dosage,
		&p.Frequency,
		&p.RecommendedAge,
		&p.SideEffects,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return catalog.Product{}, err
	}
	p.Kind = catalog.Kind(kind)
	p.ForPetTypes = splitPetTypes(types)
	return p, nil
}

func joinPetTypes(in []pets.PetType) string {
	parts := make([]string, 0, len(in))
	for _, t := range in {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}

func splitPetTypes(s string) []pets.PetType {
	out := make([]pets.PetType, 0, 2)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, pets.PetType(part))
		}
	}
	return out
}
