package screens

import (
	"strings"
	"time"
)

// Screen identifica una pantalla con lista + selección + diálogos.
type Screen string

const (
	ScreenPets         Screen = "pets"
	ScreenAppointments Screen = "appointments"
	ScreenMedications  Screen = "medications"
	ScreenVaccinations Screen = "vaccinations"
	ScreenTracker      Screen = "tracker"
	ScreenHealth       Screen = "health"
)

type Dialog string

const (
	DialogView Dialog = "view"
	DialogAdd  Dialog = "add"
	DialogEdit Dialog = "edit"
)

func ParseDialog(s string) (Dialog, bool) {
	switch Dialog(strings.ToLower(strings.TrimSpace(s))) {
	case DialogView:
		return DialogView, true
	case DialogAdd:
		return DialogAdd, true
	case DialogEdit:
		return DialogEdit, true
	default:
		return "", false
	}
}

// needsSelection: view y edit operan sobre el item seleccionado.
func (d Dialog) needsSelection() bool {
	return d == DialogView || d == DialogEdit
}

// State es el estado de una pantalla para un usuario.
// A lo sumo un diálogo abierto; OpenDialog vacío significa todo cerrado.
type State struct {
	Screen     Screen
	SelectedID string
	OpenDialog Dialog
	Filter     string
	UpdatedAt  time.Time
}

func (s State) IsOpen(d Dialog) bool {
	return s.OpenDialog == d
}
