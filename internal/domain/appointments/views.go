package appointments

import (
	"sort"
	"time"
)

// OnDate devuelve las citas del mismo día calendario (año, mes y día).
func OnDate(items []Appointment, day time.Time) []Appointment {
	y, m, d := day.Date()
	out := make([]Appointment, 0)
	for _, a := range items {
		ay, am, ad := a.Date.Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
		}
	}
	return out
}

// SortByStart ordena in-place por fecha+hora ascendente (estable).
func SortByStart(items []Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartsAt().Before(items[j].StartsAt())
	})
}

// Upcoming devuelve hasta limit citas que empiezan en now o después.
func Upcoming(items []Appointment, now time.Time, limit int) []Appointment {
	out := make([]Appointment, 0)
	for _, a := range items {
		if !a.StartsAt().Before(now) {
			out = append(out, a)
		}
	}
	SortByStart(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
