package screens

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-care-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/ui/{screen}", func(ur chi.Router) {
		ur.Get("/", getStateHandler(svc))

		ur.Post("/select", selectHandler(svc))
		ur.Delete("/select", clearSelectionHandler(svc))

		ur.Post("/dialogs/{dialog}/open", openDialogHandler(svc))
		ur.Post("/dialogs/{dialog}/close", closeDialogHandler(svc))

		ur.Put("/filter", setFilterHandler(svc))
	})
}

type selectRequest struct {
	ID string `json:"id"`
}

type filterRequest struct {
	Value string `json:"value"`
}

type dialogsResponse struct {
	View bool `json:"view"`
	Add  bool `json:"add"`
	Edit bool `json:"edit"`
}

type stateResponse struct {
	Screen    Screen          `json:"screen"`
	Selected  *string         `json:"selected"`
	Dialogs   dialogsResponse `json:"dialogs"`
	Filter    string          `json:"filter"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// getStateHandler godoc
// @Summary Estado de una pantalla
// @Description Selección, diálogos abiertos y filtro del usuario en la pantalla.
// @Tags ui
// @Produce json
// @Param screen path string true "pets, appointments, medications, vaccinations, tracker, health"
// @Success 200 {object} stateResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "unknown screen"
// @Router /ui/{screen} [get]
func getStateHandler(svc *Service) http.HandlerFunc {
	return withScreen(svc, func(w http.ResponseWriter, r *http.Request, userID string, screen Screen) {
		st, err := svc.Get(r.Context(), userID, screen)
		writeState(w, st, err)
	})
}

// selectHandler godoc
// @Summary Seleccionar item
// @Description Un id inexistente deja la selección vacía (no es error).
// @Tags ui
// @Accept json
// @Produce json
// @Param screen path string true "Pantalla"
// @Param payload body selectRequest true "Item"
// @Success 200 {object} stateResponse
// @Router /ui/{screen}/select [post]
func selectHandler(svc *Service) http.HandlerFunc {
	return withScreen(svc, func(w http.ResponseWriter, r *http.Request, userID string, screen Screen) {
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		st, err := svc.Select(r.Context(), userID, screen, req.ID)
		writeState(w, st, err)
	})
}

// clearSelectionHandler godoc
// @Summary Limpiar selección
// @Description También cierra view/edit.
// @Tags ui
// @Produce json
// @Param screen path string true "Pantalla"
// @Success 200 {object} stateResponse
// @Failure 404 {string} string "unknown screen"
// @Router /ui/{screen}/select [delete]
func clearSelectionHandler(svc *Service) http.HandlerFunc {
	return withScreen(svc, func(w http.ResponseWriter, r *http.Request, userID string, screen Screen) {
		st, err := svc.ClearSelection(r.Context(), userID, screen)
		writeState(w, st, err)
	})
}

// openDialogHandler godoc
// @Summary Abrir diálogo
// @Description Abre view, add o edit y cierra los demás. view/edit requieren selección (409).
// @Tags ui
// @Produce json
// @Param screen path string true "Pantalla"
// @Param dialog path string true "view, add, edit"
// @Success 200 {object} stateResponse
// @Failure 409 {string} string "no item selected"
// @Router /ui/{screen}/dialogs/{dialog}/open [post]
func openDialogHandler(svc *Service) http.HandlerFunc {
	return withScreen(svc, func(w http.ResponseWriter, r *http.Request, userID string, screen Screen) {
		st, err := svc.OpenDialog(r.Context(), userID, screen, Dialog(chi.URLParam(r, "dialog")))
		writeState(w, st, err)
	})
}

// closeDialogHandler godoc
// @Summary Cerrar diálogo
// @Description Cerrar view/edit limpia la selección. Cerrar uno ya cerrado es no-op.
// @Tags ui
// @Produce json
// @Param screen path string true "Pantalla"
// @Param dialog path string true "view, add, edit"
// @Success 200 {object} stateResponse
// @Failure 404 {string} string "unknown screen / unknown dialog"
// @Router /ui/{screen}/dialogs/{dialog}/close [post]
func closeDialogHandler(svc *Service) http.HandlerFunc {
	return withScreen(svc, func(w http.ResponseWriter, r *http.Request, userID string, screen Screen) {
		st, err := svc.CloseDialog(r.Context(), userID, screen, Dialog(chi.URLParam(r, "dialog")))
		writeState(w, st, err)
	})
}

// setFilterHandler godoc
// @Summary Filtro de la pantalla
// @Tags ui
// @Accept json
// @Produce json
// @Param screen path string true "Pantalla"
// @Param payload body filterRequest true "Valor del filtro (vacío = todos)"
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "invalid json"
// @Router /ui/{screen}/filter [put]
func setFilterHandler(svc *Service) http.HandlerFunc {
	return withScreen(svc, func(w http.ResponseWriter, r *http.Request, userID string, screen Screen) {
		var req filterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		st, err := svc.SetFilter(r.Context(), userID, screen, req.Value)
		writeState(w, st, err)
	})
}

// withScreen resuelve usuario y pantalla antes del handler.
func withScreen(svc *Service, next func(http.ResponseWriter, *http.Request, string, Screen)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		screen, ok := svc.ParseScreen(chi.URLParam(r, "screen"))
		if !ok {
			http.Error(w, "unknown screen", http.StatusNotFound)
			return
		}
		next(w, r, userID, screen)
	}
}

func writeState(w http.ResponseWriter, st State, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toStateResponse(st))
	case errors.Is(err, ErrUnknownScreen):
		http.Error(w, "unknown screen", http.StatusNotFound)
	case errors.Is(err, ErrUnknownDialog):
		http.Error(w, "unknown dialog", http.StatusNotFound)
	case errors.Is(err, ErrNoSelection):
		http.Error(w, "no item selected", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toStateResponse(st State) stateResponse {
	out := stateResponse{
		Screen: st.Screen,
		Dialogs: dialogsResponse{
			View: st.IsOpen(DialogView),
			Add:  st.IsOpen(DialogAdd),
			Edit: st.IsOpen(DialogEdit),
		},
		Filter: st.Filter,
	}
	if st.SelectedID != "" {
		id := st.SelectedID
		out.Selected = &id
	}
	if !st.UpdatedAt.IsZero() {
		t := st.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
