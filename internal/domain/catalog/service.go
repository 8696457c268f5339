package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

type Service struct {
	repo  Repository
	cache Cache
	log   logger.Logger
	now   func() time.Time
}

// NewService: cache puede ser nil (sin cache).
func NewService(repo Repository, cache Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With(map[string]any{"component": "catalog"}),
		now:   time.Now,
	}
}

type AddInput struct {
	Kind           Kind
	Name           string
	Description    string
	Price          float64
	ForPetTypes    []string
	Manufacturer   string
	InStock        bool
	ImageURL       string
	Dosage         string
	Frequency      string
	RecommendedAge string
	SideEffects    string
}

func (s *Service) Add(ctx context.Context, in AddInput) (Product, error) {
	kind, ok := ParseKind(string(in.Kind))
	if !ok {
		return Product{}, fmt.Errorf("%w: kind must be medication or vaccination", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Product{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Price < 0 {
		return Product{}, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	types, err := parsePetTypes(in.ForPetTypes)
	if err != nil {
		return Product{}, err
	}

	now := s.now()
	p := Product{
		ID:             uuid.NewString(),
		Kind:           kind,
		Name:           strings.TrimSpace(in.Name),
		Description:    strings.TrimSpace(in.Description),
		Price:          in.Price,
		ForPetTypes:    types,
		Manufacturer:   strings.TrimSpace(in.Manufacturer),
		InStock:        in.InStock,
		ImageURL:       strings.TrimSpace(in.ImageURL),
		Dosage:         strings.TrimSpace(in.Dosage),
		Frequency:      strings.TrimSpace(in.Frequency),
		RecommendedAge: strings.TrimSpace(in.RecommendedAge),
		SideEffects:    strings.TrimSpace(in.SideEffects),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List consulta la cache primero; si falla, va directo al repo.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	key := filter.CacheKey()
	if s.cache != nil {
		items, ok, err := s.cache.GetList(ctx, key)
		switch {
		case err != nil:
			logger.FromContext(ctx, s.log).Warn("catalog cache read failed", map[string]any{"key": key, "error": err.Error()})
		case ok:
			return items, nil
		}
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, key, items); err != nil {
			logger.FromContext(ctx, s.log).Warn("catalog cache write failed", map[string]any{"key": key, "error": err.Error()})
		}
	}
	return items, nil
}

type UpdateInput struct {
	Name           *string
	Description    *string
	Price          *float64
	ForPetTypes    *[]string
	Manufacturer   *string
	InStock        *bool
	ImageURL       *string
	Dosage         *string
	Frequency      *string
	RecommendedAge *string
	SideEffects    *string
}

// Update no permite cambiar Kind: cada producto vive en su vitrina.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Product, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	next := current
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
		if next.Name == "" {
			return Product{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return Product{}, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
		}
		next.Price = *in.Price
	}
	if in.ForPetTypes != nil {
		types, err := parsePetTypes(*in.ForPetTypes)
		if err != nil {
			return Product{}, err
		}
		next.ForPetTypes = types
	}
	if in.InStock != nil {
		next.InStock = *in.InStock
	}
	setTrimmed(&next.Description, in.Description)
	setTrimmed(&next.Manufacturer, in.Manufacturer)
	setTrimmed(&next.ImageURL, in.ImageURL)
	setTrimmed(&next.Dosage, in.Dosage)
	setTrimmed(&next.Frequency, in.Frequency)
	setTrimmed(&next.RecommendedAge, in.RecommendedAge)
	setTrimmed(&next.SideEffects, in.SideEffects)
	next.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, next); err != nil {
		return Product{}, err
	}
	s.invalidate(ctx)
	return next, nil
}

// Remove elimina el producto; un id inexistente es no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx, s.log).Warn("catalog cache invalidation failed", map[string]any{"error": err.Error()})
	}
}

func parsePetTypes(in []string) ([]pets.PetType, error) {
	out := make([]pets.PetType, 0, len(in))
	seen := map[pets.PetType]bool{}
	for _, v := range in {
		t, ok := pets.ParsePetType(v)
		if !ok {
			return nil, fmt.Errorf("%w: unknown pet type %q", ErrInvalidInput, v)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one pet type is required", ErrInvalidInput)
	}
	return out, nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
