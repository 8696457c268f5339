package medications

import (
	"strings"
	"time"
)

// Active filtra las medicaciones con IsActive.
func Active(items []Medication) []Medication {
	out := make([]Medication, 0, len(items))
	for _, m := range items {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

// HasMultipleTimes indica si la medicación se da más de una vez al día.
func HasMultipleTimes(m Medication) bool {
	return len(m.Times) > 1
}

// NextDue calcula la próxima toma: última dosis (o fecha de inicio) + intervalo de la frecuencia.
// Frecuencias sin intervalo fijo ("As Needed", texto libre) no tienen próxima toma.
// Tampoco la hay si cae después de EndDate.
func NextDue(m Medication) (time.Time, bool) {
	base := m.StartDate
	if m.LastGiven != nil {
		base = *m.LastGiven
	}
	if base.IsZero() {
		return time.Time{}, false
	}

	var next time.Time
	switch normalizeFrequency(m.Frequency) {
	case "daily":
		next = base.AddDate(0, 0, 1)
	case "twicedaily":
		next = base.Add(12 * time.Hour)
	case "weekly":
		next = base.AddDate(0, 0, 7)
	case "monthly":
		next = base.AddDate(0, 1, 0)
	case "yearly":
		next = base.AddDate(1, 0, 0)
	default:
		return time.Time{}, false
	}

	if m.EndDate != nil && next.After(endOfDay(*m.EndDate)) {
		return time.Time{}, false
	}
	return next, true
}

// "Twice Daily", "twice-daily" y "twice_daily" son lo mismo.
func normalizeFrequency(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
