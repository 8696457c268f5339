package dashboard

import (
	"context"
	"time"

	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/medications"
	"pet-care-dashboard/internal/domain/pets"
)

const upcomingLimit = 5

type PetLister interface {
	ListByOwner(ctx context.Context, ownerUserID string, filter pets.ListFilter) ([]pets.Pet, error)
}

type AppointmentLister interface {
	List(ctx context.Context, ownerUserID string, filter appointments.ListFilter) ([]appointments.Appointment, error)
	Upcoming(ctx context.Context, ownerUserID string, limit int) ([]appointments.Appointment, error)
}

type MedicationLister interface {
	List(ctx context.Context, ownerUserID string, filter medications.ListFilter) ([]medications.Medication, error)
}

type MedicationDue struct {
	Medication medications.Medication
	NextDue    *time.Time
}

type Counts struct {
	Pets              int
	Appointments      int
	ActiveMedications int
}

// Overview es la pantalla de inicio: se arma siempre desde las colecciones vivas.
type Overview struct {
	Pets              []pets.Pet
	Upcoming          []appointments.Appointment
	ActiveMedications []MedicationDue
	Counts            Counts
	GeneratedAt       time.Time
}

type Service struct {
	pets         PetLister
	appointments AppointmentLister
	medications  MedicationLister
	now          func() time.Time
}

func NewService(p PetLister, a AppointmentLister, m MedicationLister) *Service {
	return &Service{
		pets:         p,
		appointments: a,
		medications:  m,
		now:          time.Now,
	}
}

func (s *Service) Overview(ctx context.Context, ownerUserID string) (Overview, error) {
	petItems, err := s.pets.ListByOwner(ctx, ownerUserID, pets.ListFilter{})
	if err != nil {
		return Overview{}, err
	}

	all, err := s.appointments.List(ctx, ownerUserID, appointments.ListFilter{})
	if err != nil {
		return Overview{}, err
	}
	upcoming, err := s.appointments.Upcoming(ctx, ownerUserID, upcomingLimit)
	if err != nil {
		return Overview{}, err
	}

	active := true
	meds, err := s.medications.List(ctx, ownerUserID, medications.ListFilter{Active: &active})
	if err != nil {
		return Overview{}, err
	}

	due := make([]MedicationDue, 0, len(meds))
	for _, m := range meds {
		d := MedicationDue{Medication: m}
		if next, ok := medications.NextDue(m); ok {
			d.NextDue = &next
		}
		due = append(due, d)
	}

	return Overview{
		Pets:              petItems,
		Upcoming:          upcoming,
		ActiveMedications: due,
		Counts: Counts{
			Pets:              len(petItems),
			Appointments:      len(all),
			ActiveMedications: len(due),
		},
		GeneratedAt: s.now(),
	}, nil
}
