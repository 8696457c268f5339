package appointments

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
	ErrNotFound     = errors.New("appointment not found")
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

type BookInput struct {
	Title    string
	Date     time.Time
	Time     string
	Type     string
	PetName  string
	Provider string
	Notes    string
}

// Book agenda una cita. Todos los campos salvo Notes son obligatorios.
func (s *Service) Book(ctx context.Context, ownerUserID string, in BookInput) (Appointment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.PetName) == "" ||
		strings.TrimSpace(in.Provider) == "" {
		return Appointment{}, fmt.Errorf("%w: title, petName and provider are required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return Appointment{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	hhmm, err := NormalizeTime(in.Time)
	if err != nil {
		return Appointment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	typ, ok := ParseType(in.Type)
	if !ok {
		return Appointment{}, fmt.Errorf("%w: type must be Veterinary, Grooming, Training or Boarding", ErrInvalidInput)
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Title:       strings.TrimSpace(in.Title),
		Date:        CivilDate(in.Date),
		Time:        hhmm,
		Type:        typ,
		PetName:     strings.TrimSpace(in.PetName),
		Provider:    strings.TrimSpace(in.Provider),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve las citas ordenadas por fecha+hora (el calendario las muestra así).
func (s *Service) List(ctx context.Context, ownerUserID string, filter ListFilter) ([]Appointment, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID, filter)
	if err != nil {
		return nil, err
	}
	SortByStart(items)
	return items, nil
}

func (s *Service) Upcoming(ctx context.Context, ownerUserID string, limit int) ([]Appointment, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID, ListFilter{})
	if err != nil {
		return nil, err
	}
	return Upcoming(items, s.now().UTC(), limit), nil
}

type UpdateInput struct {
	Title    *string
	Date     *time.Time
	Time     *string
	Type     *string
	PetName  *string
	Provider *string
	Notes    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Appointment, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	next := current
	if in.Title != nil {
		next.Title = strings.TrimSpace(*in.Title)
	}
	if in.PetName != nil {
		next.PetName = strings.TrimSpace(*in.PetName)
	}
	if in.Provider != nil {
		next.Provider = strings.TrimSpace(*in.Provider)
	}
	if next.Title == "" || next.PetName == "" || next.Provider == "" {
		return Appointment{}, fmt.Errorf("%w: title, petName and provider are required", ErrInvalidInput)
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Appointment{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		next.Date = CivilDate(*in.Date)
	}
	if in.Time != nil {
		hhmm, err := NormalizeTime(*in.Time)
		if err != nil {
			return Appointment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		next.Time = hhmm
	}
	if in.Type != nil {
		typ, ok := ParseType(*in.Type)
		if !ok {
			return Appointment{}, fmt.Errorf("%w: type must be Veterinary, Grooming, Training or Boarding", ErrInvalidInput)
		}
		next.Type = typ
	}
	if in.Notes != nil {
		next.Notes = strings.TrimSpace(*in.Notes)
	}
	next.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, next); err != nil {
		return Appointment{}, err
	}
	return next, nil
}

// Reschedule mueve la cita a otra fecha/hora.
func (s *Service) Reschedule(ctx context.Context, id string, date time.Time, hhmm string) (Appointment, error) {
	return s.Update(ctx, id, UpdateInput{Date: &date, Time: &hhmm})
}

// Cancel elimina la cita; un id inexistente es no-op.
func (s *Service) Cancel(ctx context.Context, id string) error {
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

// Exists indica si la cita existe y es del usuario.
func (s *Service) Exists(ctx context.Context, ownerUserID, id string) (bool, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return a.OwnerUserID == ownerUserID, nil
}
