package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Trend
	}{
		{name: "empty", values: nil, want: TrendStable},
		{name: "single point", values: []float64{65.2}, want: TrendStable},
		{name: "increasing", values: []float64{10, 12}, want: TrendIncreasing},
		{name: "decreasing", values: []float64{12, 10}, want: TrendDecreasing},
		{name: "equal", values: []float64{10, 10}, want: TrendStable},
		{name: "only last two count", values: []float64{65.2, 66.5, 67.1, 66.8, 66.3, 65.9}, want: TrendDecreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightTrend(tt.values))
		})
	}
}

func TestMean(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok)

	got, ok := Mean([]float64{45, 30, 30, 60, 40})
	require.True(t, ok)
	assert.InDelta(t, 41.0, got, 1e-9)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Kind: KindWeight, RecordedOn: day(2023, 6, 15), Weight: &WeightDetail{Value: 65.9, Unit: "lbs"}},
		{Kind: KindWeight, RecordedOn: day(2023, 5, 15), Weight: &WeightDetail{Value: 66.3, Unit: "lbs"}},
		{Kind: KindDiet, RecordedOn: day(2023, 6, 14), Diet: &DietDetail{Food: "Dry food", Calories: 720}},
		{Kind: KindDiet, RecordedOn: day(2023, 6, 13), Diet: &DietDetail{Food: "Dry food", Calories: 600}},
		{Kind: KindDiet, RecordedOn: day(2023, 6, 13), Diet: &DietDetail{Food: "Chicken", Calories: 200}},
		{Kind: KindExercise, RecordedOn: day(2023, 6, 14), Exercise: &ExerciseDetail{Activity: "Walk", DurationMinutes: 45}},
		{Kind: KindExercise, RecordedOn: day(2023, 6, 13), Exercise: &ExerciseDetail{Activity: "Fetch", DurationMinutes: 30}},
		{Kind: KindMeasurement, RecordedOn: day(2023, 1, 15), Measurement: &MeasurementDetail{Height: "23 inches"}},
		{Kind: KindMeasurement, RecordedOn: day(2023, 5, 15), Measurement: &MeasurementDetail{Height: "24 inches", Length: "36 inches"}},
	}

	s := Summarize(records)

	require.NotNil(t, s.LatestWeight)
	assert.Equal(t, 65.9, s.LatestWeight.Value)
	assert.Equal(t, TrendDecreasing, s.WeightTrend)
	require.Len(t, s.WeightHistory, 2)
	assert.Equal(t, day(2023, 5, 15), s.WeightHistory[0].Date)

	require.NotNil(t, s.AvgExerciseMinutes)
	assert.InDelta(t, 37.5, *s.AvgExerciseMinutes, 1e-9)

	require.NotNil(t, s.AvgDailyCalories)
	assert.InDelta(t, 1520.0/3, *s.AvgDailyCalories, 1e-9)

	require.NotNil(t, s.Measurements)
	assert.Equal(t, "24 inches", s.Measurements.Height)
	assert.Equal(t, day(2023, 5, 15), s.Measurements.LastUpdated)
}

func TestSummarize_CaloriesMeanPerRecord(t *testing.T) {
	records := []Record{
		{Kind: KindDiet, RecordedOn: day(2023, 6, 13), Diet: &DietDetail{Food: "Breakfast", Calories: 300}},
		{Kind: KindDiet, RecordedOn: day(2023, 6, 13), Diet: &DietDetail{Food: "Dinner", Calories: 400}},
		{Kind: KindDiet, RecordedOn: day(2023, 6, 14), Diet: &DietDetail{Food: "Dry food", Calories: 500}},
	}

	s := Summarize(records)

	require.NotNil(t, s.AvgDailyCalories)
	assert.InDelta(t, 400.0, *s.AvgDailyCalories, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Nil(t, s.LatestWeight)
	assert.Nil(t, s.AvgExerciseMinutes)
	assert.Nil(t, s.AvgDailyCalories)
	assert.Nil(t, s.Measurements)
	assert.Equal(t, TrendStable, s.WeightTrend)
	assert.NotNil(t, s.WeightHistory)
}
