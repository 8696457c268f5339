package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tracker/medications", func(mr chi.Router) {
		mr.Post("/", addHandler(svc))
		mr.Get("/", listHandler(svc))

		mr.Get("/{medicationID}", getHandler(svc))
		mr.Patch("/{medicationID}", updateHandler(svc))
		mr.Delete("/{medicationID}", removeHandler(svc))
		mr.Post("/{medicationID}/given", markGivenHandler(svc))
	})
}

type addRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"startDate"` // YYYY-MM-DD, opcional (hoy)
	EndDate   string `json:"endDate"`   // YYYY-MM-DD, opcional
	Time      string `json:"time"`      // "08:00,20:00"
	Notes     string `json:"notes"`
}

type updateRequest struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	StartDate *string `json:"startDate"`
	Time      *string `json:"time"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"isActive"`
}

type medicationResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Dosage        string     `json:"dosage"`
	Frequency     string     `json:"frequency"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate,omitempty"`
	Time          string     `json:"time"`
	Times         []string   `json:"times"`
	MultipleTimes bool       `json:"multipleTimes"`
	Notes         string     `json:"notes,omitempty"`
	IsActive      bool       `json:"isActive"`
	LastGiven     *time.Time `json:"lastGiven,omitempty"`
	NextDue       *time.Time `json:"nextDue,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// addHandler godoc
// @Summary Agregar medicación al tracker
// @Description name, dosage, frequency y time son obligatorios. time admite varias horas separadas por coma.
// @Tags tracker
// @Accept json
// @Produce json
// @Param payload body addRequest true "Medicación"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /tracker/medications [post]
func addHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := AddInput{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
			Times:     req.Time,
			Notes:     req.Notes,
		}
		if v := strings.TrimSpace(req.StartDate); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.StartDate = d
		}
		if v := strings.TrimSpace(req.EndDate); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "endDate must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.EndDate = &d
		}

		m, err := svc.Add(r.Context(), userID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(m))
	}
}

// listHandler godoc
// @Summary Listar medicaciones del tracker
// @Tags tracker
// @Produce json
// @Param active query bool false "Solo activas (true) o inactivas (false)"
// @Success 200 {array} medicationResponse
// @Router /tracker/medications [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var filter ListFilter
		if v := strings.TrimSpace(r.URL.Query().Get("active")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "active must be true or false", http.StatusBadRequest)
				return
			}
			filter.Active = &b
		}

		items, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getHandler godoc
// @Summary Ver medicación del tracker
// @Tags tracker
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /tracker/medications/{medicationID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toResponse(m))
	}
}

// updateHandler godoc
// @Summary Editar medicación del tracker
// @Tags tracker
// @Accept json
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Param payload body updateRequest true "Campos a cambiar"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /tracker/medications/{medicationID} [patch]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		// "endDate": null borra la fecha de fin; detectamos presencia del campo.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateRequest
		b, _ := json.Marshal(raw)
		if err := json.Unmarshal(b, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
			Times:     req.Time,
			Notes:     req.Notes,
			IsActive:  req.IsActive,
		}
		if req.StartDate != nil {
			d, err := time.Parse(dateLayout, strings.TrimSpace(*req.StartDate))
			if err != nil {
				http.Error(w, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.StartDate = &d
		}
		if v, exists := raw["endDate"]; exists {
			in.EndDate.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "endDate must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				if strings.TrimSpace(s) != "" {
					d, err := time.Parse(dateLayout, s)
					if err != nil {
						http.Error(w, "endDate must be YYYY-MM-DD or null", http.StatusBadRequest)
						return
					}
					in.EndDate.Value = &d
				}
			}
		}

		updated, err := svc.Update(r.Context(), current.ID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(updated))
	}
}

// markGivenHandler godoc
// @Summary Marcar como dada
// @Description Registra lastGiven = ahora.
// @Tags tracker
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 404 {string} string "medication not found"
// @Router /tracker/medications/{medicationID}/given [post]
func markGivenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		m, err := svc.MarkGiven(r.Context(), current.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(m))
	}
}

// removeHandler godoc
// @Summary Quitar medicación del tracker
// @Tags tracker
// @Param medicationID path string true "ID de la medicación"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /tracker/medications/{medicationID} [delete]
func removeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "medicationID")
		m, err := svc.GetByID(r.Context(), id)
		if err == nil && m.OwnerUserID != userID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadOwned(w http.ResponseWriter, r *http.Request, svc *Service) (Medication, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Medication{}, false
	}

	m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
	if err != nil {
		writeError(w, err)
		return Medication{}, false
	}
	if m.OwnerUserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Medication{}, false
	}
	return m, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(m Medication) medicationResponse {
	out := medicationResponse{
		ID:            m.ID,
		Name:          m.Name,
		Dosage:        m.Dosage,
		Frequency:     m.Frequency,
		StartDate:     m.StartDate.Format(dateLayout),
		Time:          m.TimesString(),
		Times:         m.Times,
		MultipleTimes: HasMultipleTimes(m),
		Notes:         m.Notes,
		IsActive:      m.IsActive,
		LastGiven:     m.LastGiven,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.EndDate != nil {
		out.EndDate = m.EndDate.Format(dateLayout)
	}
	if next, ok := NextDue(m); ok && m.IsActive {
		out.NextDue = &next
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
