package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-care-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name         string `json:"name"`
	Breed        string `json:"breed"`
	Age          int    `json:"age"`
	Type         string `json:"type" enums:"Dog,Cat,Bird,Fish,Other"`
	PhotoURL     string `json:"photoUrl"`
	Weight       string `json:"weight"`
	BirthDate    string `json:"birthdate"` // YYYY-MM-DD opcional
	MicrochipID  string `json:"microchipId"`
	Allergies    string `json:"allergies"`
	SpecialNeeds string `json:"specialNeeds"`
}

type petResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Breed        string    `json:"breed"`
	Age          int       `json:"age"`
	Type         PetType   `json:"type"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	Weight       string    `json:"weight,omitempty"`
	BirthDate    string    `json:"birthdate,omitempty"`
	MicrochipID  string    `json:"microchipId,omitempty"`
	Allergies    string    `json:"allergies,omitempty"`
	SpecialNeeds string    `json:"specialNeeds,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type updatePetRequest struct {
	Name         *string `json:"name"`
	Breed        *string `json:"breed"`
	Age          *int    `json:"age"`
	Type         *string `json:"type"`
	PhotoURL     *string `json:"photoUrl"`
	Weight       *string `json:"weight"`
	MicrochipID  *string `json:"microchipId"`
	Allergies    *string `json:"allergies"`
	SpecialNeeds *string `json:"specialNeeds"`
}

// createPetHandler godoc
// @Summary Agregar mascota
// @Description Crea una mascota del usuario. name y breed son obligatorios; type por defecto Dog.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / name and breed are required"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse(dateLayout, req.BirthDate)
			if err != nil {
				http.Error(w, "birthdate must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), userID, CreateInput{
			Name:         req.Name,
			Breed:        req.Breed,
			Age:          req.Age,
			Type:         req.Type,
			PhotoURL:     req.PhotoURL,
			Weight:       req.Weight,
			BirthDate:    bd,
			MicrochipID:  req.MicrochipID,
			Allergies:    req.Allergies,
			SpecialNeeds: req.SpecialNeeds,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Param type query string false "Filtrar por tipo (Dog, Cat, ...)"
// @Param q query string false "Búsqueda en nombre/raza"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter := ListFilter{Query: r.URL.Query().Get("q")}
		if v := strings.TrimSpace(r.URL.Query().Get("type")); v != "" {
			t, ok := ParsePetType(v)
			if !ok {
				// tipo desconocido => lista vacía
				writeJSON(w, http.StatusOK, []petResponse{})
				return
			}
			filter.Type = t
		}

		items, err := svc.ListByOwner(r.Context(), userID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Ver mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadOwnedPet(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler aplica un PATCH y reemplaza la mascota por id.
// @Summary Editar mascota
// @Description Solo se cambian los campos presentes. "birthdate": null la borra.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a cambiar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwnedPet(w, r, svc)
		if !ok {
			return
		}

		// Para soportar "birthdate": null detectamos presencia del campo.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updatePetRequest
		b, _ := json.Marshal(raw)
		if err := json.Unmarshal(b, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd := PatchDate{}
		if v, exists := raw["birthdate"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birthdate must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				if strings.TrimSpace(s) != "" {
					t, err := time.Parse(dateLayout, s)
					if err != nil {
						http.Error(w, "birthdate must be YYYY-MM-DD or null", http.StatusBadRequest)
						return
					}
					bd.Value = &t
				}
			}
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			Name:         req.Name,
			Breed:        req.Breed,
			Age:          req.Age,
			Type:         req.Type,
			PhotoURL:     req.PhotoURL,
			Weight:       req.Weight,
			BirthDate:    bd,
			MicrochipID:  req.MicrochipID,
			Allergies:    req.Allergies,
			SpecialNeeds: req.SpecialNeeds,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler: borrar un id inexistente es no-op (204).
// @Summary Borrar mascota
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.GetByID(r.Context(), petID)
		if err == nil && p.OwnerUserID != userID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadOwnedPet(w http.ResponseWriter, r *http.Request, svc *Service) (Pet, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Pet{}, false
	}

	p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return Pet{}, false
	}
	if p.OwnerUserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Pet{}, false
	}
	return p, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	out := petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Breed:        p.Breed,
		Age:          p.Age,
		Type:         p.Type,
		PhotoURL:     p.PhotoURL,
		Weight:       p.Weight,
		MicrochipID:  p.MicrochipID,
		Allergies:    p.Allergies,
		SpecialNeeds: p.SpecialNeeds,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.BirthDate != nil {
		out.BirthDate = p.BirthDate.Format(dateLayout)
	}
	return out
}

// writeJSON está duplicado en cada módulo a propósito; todavía no hay helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
