package catalog

import (
	"strings"
	"time"

	"pet-care-dashboard/internal/domain/pets"
)

// Kind separa las dos vitrinas del catálogo.
// @Enum medication, vaccination
type Kind string

const (
	KindMedication  Kind = "medication"
	KindVaccination Kind = "vaccination"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindMedication:
		return KindMedication, true
	case KindVaccination:
		return KindVaccination, true
	default:
		return "", false
	}
}

// Product es un producto del catálogo global (no tiene owner).
// Dosage aplica a medicaciones; RecommendedAge y SideEffects a vacunas.
type Product struct {
	ID   string
	Kind Kind

	Name         string
	Description  string
	Price        float64
	ForPetTypes  []pets.PetType
	Manufacturer string
	InStock      bool
	ImageURL     string

	Dosage         string
	Frequency      string
	RecommendedAge string
	SideEffects    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// For indica si el producto aplica al tipo de mascota.
func (p Product) For(t pets.PetType) bool {
	for _, pt := range p.ForPetTypes {
		if pt == t {
			return true
		}
	}
	return false
}
