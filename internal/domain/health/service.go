package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health record not found")
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
	Kind        Kind
	RecordedOn  time.Time // cero => hoy
	Notes       string
	Weight      *WeightDetail
	Diet        *DietDetail
	Exercise    *ExerciseDetail
	Measurement *MeasurementDetail
}

// AddRecord valida que venga el detalle del Kind (y solo ese).
func (s *Service) AddRecord(ctx context.Context, petID, recordedBy string, in AddInput) (Record, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(recordedBy) == "" {
		return Record{}, ErrInvalidInput
	}
	kind, ok := ParseKind(string(in.Kind))
	if !ok {
		return Record{}, fmt.Errorf("%w: kind must be weight, diet, exercise or measurement", ErrInvalidInput)
	}

	now := s.now()
	rec := Record{
		ID:         uuid.NewString(),
		PetID:      petID,
		Kind:       kind,
		RecordedOn: civilDate(in.RecordedOn),
		RecordedAt: now,
		Notes:      strings.TrimSpace(in.Notes),
		RecordedBy: recordedBy,
	}
	if in.RecordedOn.IsZero() {
		rec.RecordedOn = civilDate(now)
	}

	if err := attachDetail(&rec, in); err != nil {
		return Record{}, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func attachDetail(rec *Record, in AddInput) error {
	details := 0
	for _, present := range []bool{in.Weight != nil, in.Diet != nil, in.Exercise != nil, in.Measurement != nil} {
		if present {
			details++
		}
	}
	if details != 1 {
		return fmt.Errorf("%w: exactly one %s detail is required", ErrInvalidInput, rec.Kind)
	}

	switch rec.Kind {
	case KindWeight:
		if in.Weight == nil || in.Weight.Value <= 0 {
			return fmt.Errorf("%w: weight value must be > 0", ErrInvalidInput)
		}
		d := *in.Weight
		d.Unit = strings.TrimSpace(d.Unit)
		if d.Unit == "" {
			d.Unit = "lbs"
		}
		rec.Weight = &d
	case KindDiet:
		if in.Diet == nil || strings.TrimSpace(in.Diet.Food) == "" || in.Diet.Calories < 0 {
			return fmt.Errorf("%w: diet food is required and calories must be >= 0", ErrInvalidInput)
		}
		d := *in.Diet
		d.Food = strings.TrimSpace(d.Food)
		d.Amount = strings.TrimSpace(d.Amount)
		rec.Diet = &d
	case KindExercise:
		if in.Exercise == nil || strings.TrimSpace(in.Exercise.Activity) == "" || in.Exercise.DurationMinutes <= 0 {
			return fmt.Errorf("%w: exercise activity is required and duration must be > 0", ErrInvalidInput)
		}
		d := *in.Exercise
		d.Activity = strings.TrimSpace(d.Activity)
		intensity := IntensityModerate
		if strings.TrimSpace(string(d.Intensity)) != "" {
			i, ok := ParseIntensity(string(d.Intensity))
			if !ok {
				return fmt.Errorf("%w: intensity must be Low, Moderate or High", ErrInvalidInput)
			}
			intensity = i
		}
		d.Intensity = intensity
		rec.Exercise = &d
	case KindMeasurement:
		if in.Measurement == nil ||
			(strings.TrimSpace(in.Measurement.Height) == "" && strings.TrimSpace(in.Measurement.Length) == "") {
			return fmt.Errorf("%w: height or length is required", ErrInvalidInput)
		}
		d := MeasurementDetail{
			Height: strings.TrimSpace(in.Measurement.Height),
			Length: strings.TrimSpace(in.Measurement.Length),
		}
		rec.Measurement = &d
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListByPet devuelve los registros más recientes primero.
func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Record, error) {
	items, err := s.repo.ListByPet(ctx, petID, filter)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(items)
	return items, nil
}

// Delete borra un registro de la mascota; un id inexistente (o de otra mascota) es no-op.
func (s *Service) Delete(ctx context.Context, petID, recordID string) error {
	rec, err := s.GetByID(ctx, recordID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if rec.PetID != petID {
		return nil
	}

	err = s.repo.Delete(ctx, rec.ID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Summary arma el resumen con todo el historial de la mascota.
func (s *Service) Summary(ctx context.Context, petID string) (Summary, error) {
	items, err := s.repo.ListByPet(ctx, petID, ListFilter{})
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func sortNewestFirst(items []Record) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].RecordedOn.Equal(items[j].RecordedOn) {
			return items[i].RecordedAt.After(items[j].RecordedAt)
		}
		return items[i].RecordedOn.After(items[j].RecordedOn)
	})
}
