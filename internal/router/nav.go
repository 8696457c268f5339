package router

import (
	"encoding/json"
	"net/http"
)

type navItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

var navItems = []navItem{
	{Label: "Dashboard", Path: "/", Icon: "home"},
	{Label: "Pets", Path: "/pets", Icon: "paw"},
	{Label: "Appointments", Path: "/appointments", Icon: "calendar"},
	{Label: "Medications", Path: "/medications", Icon: "pill"},
	{Label: "Vaccinations", Path: "/vaccinations", Icon: "syringe"},
	{Label: "Health", Path: "/health", Icon: "activity"},
}

// navHandler godoc
// @Summary Navegación
// @Description Entradas del menú lateral. No requiere usuario.
// @Tags nav
// @Produce json
// @Success 200 {array} navItem
// @Router /nav [get]
func navHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(navItems)
}
