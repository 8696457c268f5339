package health

import "time"

// Record es una medición de salud de una mascota. Lleva exactamente un detalle, el de su Kind.
type Record struct {
	ID    string
	PetID string

	Kind       Kind
	RecordedOn time.Time // fecha civil de la medición
	RecordedAt time.Time // cuándo se registró

	Notes      string
	RecordedBy string

	Weight      *WeightDetail
	Diet        *DietDetail
	Exercise    *ExerciseDetail
	Measurement *MeasurementDetail
}

type WeightDetail struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type DietDetail struct {
	Food     string `json:"food"`
	Amount   string `json:"amount"`
	Calories int    `json:"calories"`
}

type ExerciseDetail struct {
	Activity        string    `json:"activity"`
	DurationMinutes int       `json:"durationMinutes"`
	Intensity       Intensity `json:"intensity"`
}

type MeasurementDetail struct {
	Height string `json:"height"`
	Length string `json:"length"`
}
