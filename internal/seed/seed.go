// Package seed carga datos de demo: el catálogo base y, opcionalmente, un hogar completo
// (mascotas, citas, tracker e historial de salud) para un usuario.
package seed

import (
	"context"
	"fmt"
	"time"

	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/medications"
	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/platform/logger"
)

type Services struct {
	Pets         *pets.Service
	Appointments *appointments.Service
	Medications  *medications.Service
	Catalog      *catalog.Service
	Health       *health.Service
}

// Catalog inserta los productos base solo si el catálogo está vacío. Devuelve cuántos insertó.
func Catalog(ctx context.Context, svc *catalog.Service) (int, error) {
	existing, err := svc.List(ctx, catalog.ListFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, in := range catalogProducts {
		if _, err := svc.Add(ctx, in); err != nil {
			return 0, fmt.Errorf("seed catalog %q: %w", in.Name, err)
		}
	}
	return len(catalogProducts), nil
}

// Household crea el hogar demo para userID si todavía no tiene mascotas.
// Las citas quedan relativas a now; el resto usa las fechas históricas.
func Household(ctx context.Context, s Services, userID string, now time.Time) (bool, error) {
	existing, err := s.Pets.ListByOwner(ctx, userID, pets.ListFilter{})
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	byName := map[string]pets.Pet{}
	for _, in := range householdPets {
		p, err := s.Pets.Create(ctx, userID, in)
		if err != nil {
			return false, fmt.Errorf("seed pet %q: %w", in.Name, err)
		}
		byName[p.Name] = p
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, a := range householdAppointments {
		in := a.input
		in.Date = today.AddDate(0, 0, a.inDays)
		if _, err := s.Appointments.Book(ctx, userID, in); err != nil {
			return false, fmt.Errorf("seed appointment %q: %w", in.Title, err)
		}
	}

	for _, in := range householdMedications {
		if _, err := s.Medications.Add(ctx, userID, in); err != nil {
			return false, fmt.Errorf("seed medication %q: %w", in.Name, err)
		}
	}

	for name, records := range healthHistory() {
		p, ok := byName[name]
		if !ok {
			continue
		}
		for _, in := range records {
			if _, err := s.Health.AddRecord(ctx, p.ID, userID, in); err != nil {
				return false, fmt.Errorf("seed health %s/%s: %w", name, in.Kind, err)
			}
		}
	}

	return true, nil
}

// Run aplica el seed del catálogo y, si demoUser no es vacío, el del hogar.
func Run(ctx context.Context, s Services, demoUser string, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	n, err := Catalog(ctx, s.Catalog)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info("catalog seeded", map[string]any{"products": n})
	}

	if demoUser == "" {
		return nil
	}
	created, err := Household(ctx, s, demoUser, time.Now())
	if err != nil {
		return err
	}
	if created {
		log.Info("demo household seeded", map[string]any{"user_id": demoUser})
	}
	return nil
}
