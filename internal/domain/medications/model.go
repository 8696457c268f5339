package medications

import (
	"fmt"
	"strings"
	"time"
)

// Medication es una entrada del tracker de medicación de la casa.
type Medication struct {
	ID          string
	OwnerUserID string

	Name      string
	Dosage    string
	Frequency string // texto libre: "Daily", "Twice Daily", "Monthly", ...

	StartDate time.Time
	EndDate   *time.Time

	Times []string // "HH:MM" 24h, al menos uno
	Notes string

	IsActive  bool
	LastGiven *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimesString es el formato de cable: "08:00,20:00".
func (m Medication) TimesString() string {
	return strings.Join(m.Times, ",")
}

var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

// ParseTimes separa "08:00, 8:00 PM" y normaliza cada hora a "HH:MM".
func ParseTimes(s string) ([]string, error) {
	out := make([]string, 0, 2)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		parsed := ""
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, part); err == nil {
				parsed = t.Format("15:04")
				break
			}
		}
		if parsed == "" {
			return nil, fmt.Errorf("invalid time %q", part)
		}
		out = append(out, parsed)
	}
	return out, nil
}
