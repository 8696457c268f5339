package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/health", func(hr chi.Router) {
		hr.Get("/", overviewHandler(svc, petsSvc))

		hr.Get("/{petID}", summaryHandler(svc, petsSvc))
		hr.Get("/{petID}/records", listRecordsHandler(svc, petsSvc))
		hr.Post("/{petID}/records", addRecordHandler(svc, petsSvc))
		hr.Delete("/{petID}/records/{recordID}", deleteRecordHandler(svc, petsSvc))
	})
}

// addRecordRequest lleva el objeto de detalle que corresponde a kind.
type addRecordRequest struct {
	Kind        Kind               `json:"kind" enums:"weight,diet,exercise,measurement"`
	RecordedOn  string             `json:"recordedOn"` // YYYY-MM-DD, opcional (hoy)
	Notes       string             `json:"notes"`
	Weight      *WeightDetail      `json:"weight,omitempty"`
	Diet        *DietDetail        `json:"diet,omitempty"`
	Exercise    *ExerciseDetail    `json:"exercise,omitempty"`
	Measurement *MeasurementDetail `json:"measurement,omitempty"`
}

type recordResponse struct {
	ID          string             `json:"id"`
	PetID       string             `json:"petId"`
	Kind        Kind               `json:"kind"`
	RecordedOn  string             `json:"recordedOn"`
	RecordedAt  time.Time          `json:"recordedAt"`
	RecordedBy  string             `json:"recordedBy"`
	Notes       string             `json:"notes,omitempty"`
	Weight      *WeightDetail      `json:"weight,omitempty"`
	Diet        *DietDetail        `json:"diet,omitempty"`
	Exercise    *ExerciseDetail    `json:"exercise,omitempty"`
	Measurement *MeasurementDetail `json:"measurement,omitempty"`
}

type petSummaryResponse struct {
	PetID   string       `json:"petId"`
	PetName string       `json:"petName"`
	Breed   string       `json:"breed"`
	Type    pets.PetType `json:"type"`
	Summary Summary      `json:"summary"`
}

// overviewHandler godoc
// @Summary Resumen de salud de todas las mascotas
// @Description Un resumen por mascota del usuario (peso actual, tendencia, promedios, medidas).
// @Tags health
// @Produce json
// @Success 200 {array} petSummaryResponse
// @Failure 401 {string} string "unauthorized"
// @Router /health [get]
func overviewHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := petsSvc.ListByOwner(r.Context(), userID, pets.ListFilter{})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petSummaryResponse, 0, len(items))
		for _, p := range items {
			sum, err := svc.Summary(r.Context(), p.ID)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			out = append(out, petSummaryResponse{
				PetID:   p.ID,
				PetName: p.Name,
				Breed:   p.Breed,
				Type:    p.Type,
				Summary: sum,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// summaryHandler godoc
// @Summary Resumen de salud de una mascota
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petSummaryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /health/{petID} [get]
func summaryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadOwnedPet(w, r, petsSvc)
		if !ok {
			return
		}

		sum, err := svc.Summary(r.Context(), p.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, petSummaryResponse{
			PetID:   p.ID,
			PetName: p.Name,
			Breed:   p.Breed,
			Type:    p.Type,
			Summary: sum,
		})
	}
}

// listRecordsHandler godoc
// @Summary Listar registros de salud
// @Description Más recientes primero. Filtros por tipo y rango de fechas.
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param kinds query string false "CSV de tipos (weight,diet,exercise,measurement)"
// @Param from query string false "Desde (YYYY-MM-DD)"
// @Param to query string false "Hasta (YYYY-MM-DD)"
// @Param limit query int false "Máximo (1-500). Por defecto sin límite"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Router /health/{petID}/records [get]
func listRecordsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadOwnedPet(w, r, petsSvc)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), p.ID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addRecordHandler godoc
// @Summary Registrar métrica de salud
// @Description kind define qué detalle es obligatorio: weight{value,unit}, diet{food,amount,calories}, exercise{activity,durationMinutes,intensity}, measurement{height,length}.
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addRecordRequest true "Registro"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /health/{petID}/records [post]
func addRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadOwnedPet(w, r, petsSvc)
		if !ok {
			return
		}
		userID, _ := middleware.UserID(r.Context())

		var req addRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := AddInput{
			Kind:        req.Kind,
			Notes:       req.Notes,
			Weight:      req.Weight,
			Diet:        req.Diet,
			Exercise:    req.Exercise,
			Measurement: req.Measurement,
		}
		if v := strings.TrimSpace(req.RecordedOn); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "recordedOn must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.RecordedOn = d
		}

		rec, err := svc.AddRecord(r.Context(), p.ID, userID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Borrar registro de salud
// @Tags health
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Success 204
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /health/{petID}/records/{recordID} [delete]
func deleteRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadOwnedPet(w, r, petsSvc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), p.ID, chi.URLParam(r, "recordID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadOwnedPet: la pantalla de salud solo muestra mascotas propias.
func loadOwnedPet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (pets.Pet, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return pets.Pet{}, false
	}

	p, err := petsSvc.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return pets.Pet{}, false
	}
	if p.OwnerUserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return pets.Pet{}, false
	}
	return p, true
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var filter ListFilter

	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			filter.Limit = n
		}
	}

	// kinds=weight,diet
	if v := strings.TrimSpace(q.Get("kinds")); v != "" {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			k, ok := ParseKind(part)
			if !ok {
				return ListFilter{}, errors.New("kinds must be weight, diet, exercise or measurement")
			}
			filter.Kinds = append(filter.Kinds, k)
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	return filter, nil
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		PetID:       rec.PetID,
		Kind:        rec.Kind,
		RecordedOn:  rec.RecordedOn.Format(dateLayout),
		RecordedAt:  rec.RecordedAt,
		RecordedBy:  rec.RecordedBy,
		Notes:       rec.Notes,
		Weight:      rec.Weight,
		Diet:        rec.Diet,
		Exercise:    rec.Exercise,
		Measurement: rec.Measurement,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
