package catalog

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

// RegisterRoutes monta /medications y /vaccinations sobre el mismo servicio.
// Leer el catálogo no requiere usuario; escribir sí.
func RegisterRoutes(r chi.Router, svc *Service) {
	registerKind(r, "/medications", KindMedication, svc)
	registerKind(r, "/vaccinations", KindVaccination, svc)
}

func registerKind(r chi.Router, path string, kind Kind, svc *Service) {
	r.Route(path, func(cr chi.Router) {
		cr.Post("/", addHandler(svc, kind))
		cr.Get("/", listHandler(svc, kind))

		cr.Get("/{productID}", getHandler(svc, kind))
		cr.Patch("/{productID}", updateHandler(svc, kind))
		cr.Delete("/{productID}", removeHandler(svc, kind))
	})
}

type addRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	ForPetTypes    []string `json:"forPetTypes"`
	Manufacturer   string   `json:"manufacturer"`
	InStock        bool     `json:"inStock"`
	ImageURL       string   `json:"imageUrl"`
	Dosage         string   `json:"dosage"`
	Frequency      string   `json:"frequency"`
	RecommendedAge string   `json:"recommendedAge"`
	SideEffects    string   `json:"sideEffects"`
}

type updateRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	ForPetTypes    *[]string `json:"forPetTypes"`
	Manufacturer   *string   `json:"manufacturer"`
	InStock        *bool     `json:"inStock"`
	ImageURL       *string   `json:"imageUrl"`
	Dosage         *string   `json:"dosage"`
	Frequency      *string   `json:"frequency"`
	RecommendedAge *string   `json:"recommendedAge"`
	SideEffects    *string   `json:"sideEffects"`
}

type productResponse struct {
	ID             string         `json:"id"`
	Kind           Kind           `json:"kind"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	ForPetTypes    []pets.PetType `json:"forPetTypes"`
	Manufacturer   string         `json:"manufacturer"`
	InStock        bool           `json:"inStock"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Dosage         string         `json:"dosage,omitempty"`
	Frequency      string         `json:"frequency,omitempty"`
	RecommendedAge string         `json:"recommendedAge,omitempty"`
	SideEffects    string         `json:"sideEffects,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// addHandler godoc
// @Summary Agregar producto al catálogo
// @Description name, forPetTypes (al menos uno) y price >= 0 son obligatorios.
// @Tags catalog
// @Accept json
// @Produce json
// @Param payload body addRequest true "Producto"
// @Success 201 {object} productResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
// @Router /vaccinations [post]
func addHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Add(r.Context(), AddInput{
			Kind:           kind,
			Name:           req.Name,
			Description:    req.Description,
			Price:          req.Price,
			ForPetTypes:    req.ForPetTypes,
			Manufacturer:   req.Manufacturer,
			InStock:        req.InStock,
			ImageURL:       req.ImageURL,
			Dosage:         req.Dosage,
			Frequency:      req.Frequency,
			RecommendedAge: req.RecommendedAge,
			SideEffects:    req.SideEffects,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(p))
	}
}

// listHandler godoc
// @Summary Listar catálogo
// @Tags catalog
// @Produce json
// @Param petType query string false "Solo productos para ese tipo (Dog, Cat, ...)"
// @Param inStock query bool false "Filtrar por stock"
// @Success 200 {array} productResponse
// @Router /medications [get]
// @Router /vaccinations [get]
func listHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := ListFilter{Kind: kind}

		if v := strings.TrimSpace(q.Get("petType")); v != "" {
			t, ok := pets.ParsePetType(v)
			if !ok {
				writeJSON(w, http.StatusOK, []productResponse{})
				return
			}
			filter.PetType = t
		}
		if v := strings.TrimSpace(q.Get("inStock")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "inStock must be true or false", http.StatusBadRequest)
				return
			}
			filter.InStock = &b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getHandler godoc
// @Summary Ver producto
// @Tags catalog
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 404 {string} string "not found"
// @Router /medications/{productID} [get]
// @Router /vaccinations/{productID} [get]
func getHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadProduct(w, r, svc, kind)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

// updateHandler godoc
// @Summary Editar producto
// @Tags catalog
// @Accept json
// @Produce json
// @Param productID path string true "ID del producto"
// @Param payload body updateRequest true "Campos a cambiar"
// @Success 200 {object} productResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /medications/{productID} [patch]
// @Router /vaccinations/{productID} [patch]
func updateHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		current, ok := loadProduct(w, r, svc, kind)
		if !ok {
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			Name:           req.Name,
			Description:    req.Description,
			Price:          req.Price,
			ForPetTypes:    req.ForPetTypes,
			Manufacturer:   req.Manufacturer,
			InStock:        req.InStock,
			ImageURL:       req.ImageURL,
			Dosage:         req.Dosage,
			Frequency:      req.Frequency,
			RecommendedAge: req.RecommendedAge,
			SideEffects:    req.SideEffects,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(updated))
	}
}

// removeHandler godoc
// @Summary Quitar producto
// @Description Un id inexistente o de la otra vitrina es no-op.
// @Tags catalog
// @Param productID path string true "ID del producto"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /medications/{productID} [delete]
// @Router /vaccinations/{productID} [delete]
func removeHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "productID")
		p, err := svc.GetByID(r.Context(), id)
		switch {
		case errors.Is(err, ErrNotFound):
			w.WriteHeader(http.StatusNoContent)
			return
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		case p.Kind != kind:
			// existe, pero en la otra vitrina: para esta ruta no existe
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadProduct(w http.ResponseWriter, r *http.Request, svc *Service, kind Kind) (Product, bool) {
	p, err := svc.GetByID(r.Context(), chi.URLParam(r, "productID"))
	if err == nil && p.Kind != kind {
		err = ErrNotFound
	}
	if err != nil {
		writeError(w, err)
		return Product{}, false
	}
	return p, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(p Product) productResponse {
	return productResponse{
		ID:             p.ID,
		Kind:           p.Kind,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		ForPetTypes:    p.ForPetTypes,
		Manufacturer:   p.Manufacturer,
		InStock:        p.InStock,
		ImageURL:       p.ImageURL,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		RecommendedAge: p.RecommendedAge,
		SideEffects:    p.SideEffects,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
