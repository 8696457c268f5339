package appointments

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
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", bookHandler(svc))
		ar.Get("/", listHandler(svc))
		ar.Get("/upcoming", upcomingHandler(svc))

		ar.Get("/{appointmentID}", getHandler(svc))
		ar.Patch("/{appointmentID}", updateHandler(svc))
		ar.Delete("/{appointmentID}", cancelHandler(svc))
	})
}

type bookRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // "14:30" o "2:30 PM"
	Type     string `json:"type" enums:"Veterinary,Grooming,Training,Boarding"`
	PetName  string `json:"petName"`
	Provider string `json:"provider"`
	Notes    string `json:"notes"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Type     *string `json:"type"`
	PetName  *string `json:"petName"`
	Provider *string `json:"provider"`
	Notes    *string `json:"notes"`
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	StartsAt  time.Time `json:"startsAt"`
	Type      Type      `json:"type"`
	PetName   string    `json:"petName"`
	Provider  string    `json:"provider"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// bookHandler godoc
// @Summary Agendar cita
// @Description Todos los campos salvo notes son obligatorios. time acepta "14:30" o "2:30 PM".
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body bookRequest true "Datos de la cita"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /appointments [post]
func bookHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.Book(r.Context(), userID, BookInput{
			Title:    req.Title,
			Date:     d,
			Time:     req.Time,
			Type:     req.Type,
			PetName:  req.PetName,
			Provider: req.Provider,
			Notes:    req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(a))
	}
}

// listHandler godoc
// @Summary Listar citas
// @Description Citas del usuario ordenadas por fecha y hora. Con date devuelve solo las de ese día (vista calendario).
// @Tags appointments
// @Produce json
// @Param date query string false "Día (YYYY-MM-DD)"
// @Param type query string false "Tipo de cita"
// @Param pet query string false "Nombre de la mascota"
// @Success 200 {array} appointmentResponse
// @Router /appointments [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		filter := ListFilter{PetName: q.Get("pet")}
		if v := strings.TrimSpace(q.Get("date")); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.Date = &d
		}
		if v := strings.TrimSpace(q.Get("type")); v != "" {
			t, ok := ParseType(v)
			if !ok {
				writeJSON(w, http.StatusOK, []appointmentResponse{})
				return
			}
			filter.Type = t
		}

		items, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// upcomingHandler godoc
// @Summary Próximas citas
// @Description Citas con fecha y hora posterior a ahora, ordenadas ascendente.
// @Tags appointments
// @Produce json
// @Param limit query int false "Máximo (default 5, hasta 100)"
// @Success 200 {array} appointmentResponse
// @Failure 401 {string} string "unauthorized"
// @Router /appointments/upcoming [get]
func upcomingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := 5
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}

		items, err := svc.Upcoming(r.Context(), userID, limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// getHandler godoc
// @Summary Ver cita
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /appointments/{appointmentID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toResponse(a))
	}
}

// updateHandler cubre edición y reprogramación (date/time).
// @Summary Editar o reprogramar cita
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body updateRequest true "Campos a cambiar"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /appointments/{appointmentID} [patch]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Title:    req.Title,
			Time:     req.Time,
			Type:     req.Type,
			PetName:  req.PetName,
			Provider: req.Provider,
			Notes:    req.Notes,
		}
		if req.Date != nil {
			d, err := time.Parse(dateLayout, strings.TrimSpace(*req.Date))
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.Date = &d
		}

		updated, err := svc.Update(r.Context(), current.ID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(updated))
	}
}

// cancelHandler godoc
// @Summary Cancelar cita
// @Tags appointments
// @Param appointmentID path string true "ID de la cita"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /appointments/{appointmentID} [delete]
func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "appointmentID")
		a, err := svc.GetByID(r.Context(), id)
		switch {
		case err == nil && a.OwnerUserID != userID:
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		case err != nil && !errors.Is(err, ErrNotFound):
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := svc.Cancel(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadOwned(w http.ResponseWriter, r *http.Request, svc *Service) (Appointment, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Appointment{}, false
	}

	a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
	if err != nil {
		writeError(w, err)
		return Appointment{}, false
	}
	if a.OwnerUserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Appointment{}, false
	}
	return a, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		Date:      a.Date.Format(dateLayout),
		Time:      a.Time,
		StartsAt:  a.StartsAt(),
		Type:      a.Type,
		PetName:   a.PetName,
		Provider:  a.Provider,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponses(items []Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
