package health

import "strings"

type Kind string

const (
	KindWeight      Kind = "weight"
	KindDiet        Kind = "diet"
	KindExercise    Kind = "exercise"
	KindMeasurement Kind = "measurement"
)

var kinds = []Kind{KindWeight, KindDiet, KindExercise, KindMeasurement}

func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range kinds {
		if strings.EqualFold(string(k), s) {
			return k, true
		}
	}
	return "", false
}

type Intensity string

const (
	IntensityLow      Intensity = "Low"
	IntensityModerate Intensity = "Moderate"
	IntensityHigh     Intensity = "High"
)

func ParseIntensity(s string) (Intensity, bool) {
	s = strings.TrimSpace(s)
	for _, i := range []Intensity{IntensityLow, IntensityModerate, IntensityHigh} {
		if strings.EqualFold(string(i), s) {
			return i, true
		}
	}
	return "", false
}

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)
