package pets

import (
	"strings"
	"time"
)

// PetType define las especies soportadas por el dashboard.
// @Enum Dog, Cat, Bird, Fish, Other
type PetType string

const (
	PetTypeDog   PetType = "Dog"
	PetTypeCat   PetType = "Cat"
	PetTypeBird  PetType = "Bird"
	PetTypeFish  PetType = "Fish"
	PetTypeOther PetType = "Other"
)

var petTypes = []PetType{PetTypeDog, PetTypeCat, PetTypeBird, PetTypeFish, PetTypeOther}

// ParsePetType normaliza el tipo sin importar mayúsculas ("dog" -> Dog).
func ParsePetType(s string) (PetType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range petTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// Pet representa el perfil de una mascota del hogar.
type Pet struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string
	Age   int
	Type  PetType

	PhotoURL string
	Weight   string // texto libre: "65 lbs"

	BirthDate   *time.Time
	MicrochipID string

	Allergies    string
	SpecialNeeds string

	CreatedAt time.Time
	UpdatedAt time.Time
}
