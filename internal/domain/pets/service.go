package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Breed        string
	Age          int
	Type         string
	PhotoURL     string
	Weight       string
	BirthDate    *time.Time
	MicrochipID  string
	Allergies    string
	SpecialNeeds string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Breed) == "" {
		return Pet{}, fmt.Errorf("%w: name and breed are required", ErrInvalidInput)
	}
	if in.Age < 0 {
		return Pet{}, fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}

	// Igual que el formulario: si no viene tipo, Dog.
	typ := PetTypeDog
	if strings.TrimSpace(in.Type) != "" {
		t, ok := ParsePetType(in.Type)
		if !ok {
			return Pet{}, fmt.Errorf("%w: unknown pet type %q", ErrInvalidInput, in.Type)
		}
		typ = t
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         strings.TrimSpace(in.Name),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          in.Age,
		Type:         typ,
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		Weight:       strings.TrimSpace(in.Weight),
		BirthDate:    in.BirthDate,
		MicrochipID:  strings.TrimSpace(in.MicrochipID),
		Allergies:    strings.TrimSpace(in.Allergies),
		SpecialNeeds: strings.TrimSpace(in.SpecialNeeds),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}

// UpdateInput es un PATCH: nil = no tocar.
type UpdateInput struct {
	Name         *string
	Breed        *string
	Age          *int
	Type         *string
	PhotoURL     *string
	Weight       *string
	BirthDate    PatchDate
	MicrochipID  *string
	Allergies    *string
	SpecialNeeds *string
}

// PatchDate distingue "no enviado" de "null" (limpiar).
type PatchDate struct {
	Present bool
	Value   *time.Time
}

// Update mezcla el patch sobre la mascota actual y la reemplaza por id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	next := current
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		next.Breed = strings.TrimSpace(*in.Breed)
	}
	if next.Name == "" || next.Breed == "" {
		return Pet{}, fmt.Errorf("%w: name and breed are required", ErrInvalidInput)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
		}
		next.Age = *in.Age
	}
	if in.Type != nil {
		t, ok := ParsePetType(*in.Type)
		if !ok {
			return Pet{}, fmt.Errorf("%w: unknown pet type %q", ErrInvalidInput, *in.Type)
		}
		next.Type = t
	}
	if in.PhotoURL != nil {
		next.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if in.Weight != nil {
		next.Weight = strings.TrimSpace(*in.Weight)
	}
	if in.BirthDate.Present {
		next.BirthDate = in.BirthDate.Value
	}
	if in.MicrochipID != nil {
		next.MicrochipID = strings.TrimSpace(*in.MicrochipID)
	}
	if in.Allergies != nil {
		next.Allergies = strings.TrimSpace(*in.Allergies)
	}
	if in.SpecialNeeds != nil {
		next.SpecialNeeds = strings.TrimSpace(*in.SpecialNeeds)
	}
	next.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, next); err != nil {
		return Pet{}, err
	}
	return next, nil
}

// Delete es idempotente: borrar un id inexistente no es error.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func contains(hay, needle string) bool { return strings.Contains(hay, needle) }
