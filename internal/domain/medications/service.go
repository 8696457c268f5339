package medications

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
	ErrNotFound     = errors.New("medication not found")
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

type AddInput struct {
	Name      string
	Dosage    string
	Frequency string
	StartDate time.Time // cero => hoy
	EndDate   *time.Time
	Times     string // "08:00,20:00"
	Notes     string
	LastGiven *time.Time // historial importado; nil => nunca
}

// Add registra una medicación activa. name, dosage, frequency y al menos una hora son obligatorios.
func (s *Service) Add(ctx context.Context, ownerUserID string, in AddInput) (Medication, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Medication{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Dosage) == "" ||
		strings.TrimSpace(in.Frequency) == "" {
		return Medication{}, fmt.Errorf("%w: name, dosage and frequency are required", ErrInvalidInput)
	}
	times, err := ParseTimes(in.Times)
	if err != nil {
		return Medication{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(times) == 0 {
		return Medication{}, fmt.Errorf("%w: at least one time is required", ErrInvalidInput)
	}

	now := s.now()
	start := in.StartDate
	if start.IsZero() {
		start = civilDate(now)
	}
	if in.EndDate != nil && in.EndDate.Before(start) {
		return Medication{}, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if in.LastGiven != nil && in.LastGiven.After(now) {
		return Medication{}, fmt.Errorf("%w: lastGiven must not be in the future", ErrInvalidInput)
	}

	m := Medication{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Dosage:      strings.TrimSpace(in.Dosage),
		Frequency:   strings.TrimSpace(in.Frequency),
		StartDate:   start,
		EndDate:     in.EndDate,
		Times:       times,
		Notes:       strings.TrimSpace(in.Notes),
		IsActive:    true,
		LastGiven:   in.LastGiven,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, ownerUserID string, filter ListFilter) ([]Medication, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}

// PatchDate distingue "no vino" de "vino null" para endDate.
type PatchDate struct {
	Present bool
	Value   *time.Time
}

type UpdateInput struct {
	Name      *string
	Dosage    *string
	Frequency *string
	StartDate *time.Time
	EndDate   PatchDate
	Times     *string
	Notes     *string
	IsActive  *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Medication, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}

	next := current
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.Dosage != nil {
		next.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.Frequency != nil {
		next.Frequency = strings.TrimSpace(*in.Frequency)
	}
	if next.Name == "" || next.Dosage == "" || next.Frequency == "" {
		return Medication{}, fmt.Errorf("%w: name, dosage and frequency are required", ErrInvalidInput)
	}
	if in.Times != nil {
		times, err := ParseTimes(*in.Times)
		if err != nil {
			return Medication{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if len(times) == 0 {
			return Medication{}, fmt.Errorf("%w: at least one time is required", ErrInvalidInput)
		}
		next.Times = times
	}
	if in.StartDate != nil && !in.StartDate.IsZero() {
		next.StartDate = *in.StartDate
	}
	if in.EndDate.Present {
		next.EndDate = in.EndDate.Value
	}
	if next.EndDate != nil && next.EndDate.Before(next.StartDate) {
		return Medication{}, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if in.Notes != nil {
		next.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.IsActive != nil {
		next.IsActive = *in.IsActive
	}
	next.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, next); err != nil {
		return Medication{}, err
	}
	return next, nil
}

// MarkGiven registra la toma ahora.
func (s *Service) MarkGiven(ctx context.Context, id string) (Medication, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}

	now := s.now()
	current.LastGiven = &now
	current.UpdatedAt = now

	if err := s.repo.Update(ctx, current); err != nil {
		return Medication{}, err
	}
	return current, nil
}

// Remove elimina la medicación; un id inexistente es no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
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

// Exists indica si la medicación existe y es del usuario.
func (s *Service) Exists(ctx context.Context, ownerUserID, id string) (bool, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.OwnerUserID == ownerUserID, nil
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
