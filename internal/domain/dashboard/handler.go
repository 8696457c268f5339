package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-care-dashboard/internal/domain/medications"
	"pet-care-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", overviewHandler(svc))
}

type petCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
	Type     string `json:"type"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

type appointmentCard struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	StartsAt time.Time `json:"startsAt"`
	Type     string    `json:"type"`
	PetName  string    `json:"petName"`
	Provider string    `json:"provider"`
}

type medicationCard struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Dosage        string     `json:"dosage"`
	Frequency     string     `json:"frequency"`
	Times         []string   `json:"times"`
	MultipleTimes bool       `json:"multipleTimes"`
	LastGiven     *time.Time `json:"lastGiven,omitempty"`
	NextDue       *time.Time `json:"nextDue,omitempty"`
}

type countsResponse struct {
	Pets              int `json:"pets"`
	Appointments      int `json:"appointments"`
	ActiveMedications int `json:"activeMedications"`
}

type overviewResponse struct {
	Pets              []petCard         `json:"pets"`
	Upcoming          []appointmentCard `json:"upcomingAppointments"`
	ActiveMedications []medicationCard  `json:"activeMedications"`
	Counts            countsResponse    `json:"counts"`
	GeneratedAt       time.Time         `json:"generatedAt"`
}

// overviewHandler godoc
// @Summary Dashboard
// @Description Mascotas, próximas 5 citas y medicaciones activas con su próxima toma.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Success 200 {object} overviewResponse
// @Failure 401 {string} string "unauthorized"
// @Router / [get]
func overviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ov, err := svc.Overview(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toOverviewResponse(ov))
	}
}

func toOverviewResponse(ov Overview) overviewResponse {
	out := overviewResponse{
		Pets:              make([]petCard, 0, len(ov.Pets)),
		Upcoming:          make([]appointmentCard, 0, len(ov.Upcoming)),
		ActiveMedications: make([]medicationCard, 0, len(ov.ActiveMedications)),
		Counts: countsResponse{
			Pets:              ov.Counts.Pets,
			Appointments:      ov.Counts.Appointments,
			ActiveMedications: ov.Counts.ActiveMedications,
		},
		GeneratedAt: ov.GeneratedAt,
	}

	for _, p := range ov.Pets {
		out.Pets = append(out.Pets, petCard{
			ID:       p.ID,
			Name:     p.Name,
			Breed:    p.Breed,
			Age:      p.Age,
			Type:     string(p.Type),
			PhotoURL: p.PhotoURL,
		})
	}
	for _, a := range ov.Upcoming {
		out.Upcoming = append(out.Upcoming, appointmentCard{
			ID:       a.ID,
			Title:    a.Title,
			Date:     a.Date.Format(dateLayout),
			Time:     a.Time,
			StartsAt: a.StartsAt(),
			Type:     string(a.Type),
			PetName:  a.PetName,
			Provider: a.Provider,
		})
	}
	for _, d := range ov.ActiveMedications {
		m := d.Medication
		out.ActiveMedications = append(out.ActiveMedications, medicationCard{
			ID:            m.ID,
			Name:          m.Name,
			Dosage:        m.Dosage,
			Frequency:     m.Frequency,
			Times:         m.Times,
			MultipleTimes: medications.HasMultipleTimes(m),
			LastGiven:     m.LastGiven,
			NextDue:       d.NextDue,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
