package appointments

import (
	"fmt"
	"strings"
	"time"
)

// Type define el tipo de cita.
// @Enum Veterinary, Grooming, Training, Boarding
type Type string

const (
	TypeVeterinary Type = "Veterinary"
	TypeGrooming   Type = "Grooming"
	TypeTraining   Type = "Training"
	TypeBoarding   Type = "Boarding"
)

var types = []Type{TypeVeterinary, TypeGrooming, TypeTraining, TypeBoarding}

func ParseType(s string) (Type, bool) {
	s = strings.TrimSpace(s)
	for _, t := range types {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// Appointment es una cita agendada. PetName es texto (no FK a pets).
type Appointment struct {
	ID          string
	OwnerUserID string

	Title string
	Date  time.Time // fecha civil, medianoche UTC
	Time  string    // "HH:MM" 24h

	Type     Type
	PetName  string
	Provider string
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsAt combina Date + Time.
func (a Appointment) StartsAt() time.Time {
	h, m := 0, 0
	if t, err := time.Parse("15:04", a.Time); err == nil {
		h, m = t.Hour(), t.Minute()
	}
	y, mo, d := a.Date.Date()
	return time.Date(y, mo, d, h, m, 0, 0, time.UTC)
}

var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM"}

// NormalizeTime acepta "14:30" o "2:30 PM" y devuelve "14:30".
func NormalizeTime(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", s)
}

// CivilDate trunca a la fecha (medianoche UTC).
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
