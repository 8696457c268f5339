package health

import (
	"sort"
	"time"
)

// WeightTrend compara los dos valores más recientes (el último contra el anterior).
// Con menos de dos puntos es stable.
func WeightTrend(values []float64) Trend {
	if len(values) < 2 {
		return TrendStable
	}
	latest, previous := values[len(values)-1], values[len(values)-2]
	switch {
	case latest > previous:
		return TrendIncreasing
	case latest < previous:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// Mean devuelve ok=false con la entrada vacía.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

type WeightPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Unit  string    `json:"unit"`
}

type MeasurementPoint struct {
	Height      string    `json:"height"`
	Length      string    `json:"length"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Summary es la tarjeta de resumen de salud. Los punteros nil indican "sin datos".
type Summary struct {
	LatestWeight       *WeightPoint      `json:"latestWeight,omitempty"`
	WeightTrend        Trend             `json:"weightTrend"`
	AvgExerciseMinutes *float64          `json:"avgExerciseMinutes,omitempty"`
	AvgDailyCalories   *float64          `json:"avgDailyCalories,omitempty"`
	Measurements       *MeasurementPoint `json:"measurements,omitempty"`
	WeightHistory      []WeightPoint     `json:"weightHistory"`
}

// Summarize deriva el resumen de un conjunto de registros en cualquier orden.
// avgDailyCalories es la media por registro de dieta, no por día.
func Summarize(records []Record) Summary {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedOn.Before(sorted[j].RecordedOn)
	})

	out := Summary{WeightTrend: TrendStable, WeightHistory: []WeightPoint{}}

	weights := make([]float64, 0)
	exercise := make([]float64, 0)
	calories := make([]float64, 0)

	for _, rec := range sorted {
		switch rec.Kind {
		case KindWeight:
			if rec.Weight == nil {
				continue
			}
			weights = append(weights, rec.Weight.Value)
			out.WeightHistory = append(out.WeightHistory, WeightPoint{
				Date:  rec.RecordedOn,
				Value: rec.Weight.Value,
				Unit:  rec.Weight.Unit,
			})
		case KindExercise:
			if rec.Exercise != nil {
				exercise = append(exercise, float64(rec.Exercise.DurationMinutes))
			}
		case KindDiet:
			if rec.Diet != nil {
				calories = append(calories, float64(rec.Diet.Calories))
			}
		case KindMeasurement:
			if rec.Measurement != nil {
				out.Measurements = &MeasurementPoint{
					Height:      rec.Measurement.Height,
					Length:      rec.Measurement.Length,
					LastUpdated: rec.RecordedOn,
				}
			}
		}
	}

	if n := len(out.WeightHistory); n > 0 {
		latest := out.WeightHistory[n-1]
		out.LatestWeight = &latest
	}
	out.WeightTrend = WeightTrend(weights)

	if avg, ok := Mean(exercise); ok {
		out.AvgExerciseMinutes = &avg
	}

	if avg, ok := Mean(calories); ok {
		out.AvgDailyCalories = &avg
	}

	return out
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
