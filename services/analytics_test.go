package services

import (
	"math"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func bp(v bool) *bool       { return &v }

func TestAverageFiltersInvalidSamples(t *testing.T) {
	got := Average([]*float64{fp(7), nil, fp(9), fp(math.NaN())})
	require.NotNil(t, got)
	assert.InDelta(t, 8.0, *got, 1e-9)
}

func TestAverageAllInvalidIsNil(t *testing.T) {
	assert.Nil(t, Average(nil))
	assert.Nil(t, Average([]*float64{nil, nil}))
	assert.Nil(t, Average([]*float64{fp(math.NaN())}))
}

func TestAverageOrderInvariant(t *testing.T) {
	a := Average([]*float64{fp(1), nil, fp(5), fp(3)})
	b := Average([]*float64{fp(3), fp(5), nil, fp(1)})
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, *a, *b)
}

func TestPercentDeltaSkipsGaps(t *testing.T) {
	got := PercentDelta([]MetricPoint{
		{Date: "2024-03-01", Value: fp(10)},
		{Date: "2024-03-02", Value: nil},
		{Date: "2024-03-03", Value: fp(12)},
	})
	require.NotNil(t, got)
	assert.InDelta(t, 20.0, *got, 1e-9)
}

func TestPercentDeltaAllNilIsNil(t *testing.T) {
	assert.Nil(t, PercentDelta(nil))
	assert.Nil(t, PercentDelta([]MetricPoint{{Date: "2024-03-01"}, {Date: "2024-03-02"}}))
}

func TestPercentDeltaSingleValueIsZero(t *testing.T) {
	got := PercentDelta([]MetricPoint{
		{Date: "2024-03-01", Value: nil},
		{Date: "2024-03-02", Value: fp(4)},
		{Date: "2024-03-03", Value: nil},
	})
	require.NotNil(t, got)
	assert.Zero(t, *got)
}

func TestPercentDeltaZeroFirstIsNil(t *testing.T) {
	got := PercentDelta([]MetricPoint{
		{Date: "2024-03-01", Value: fp(0)},
		{Date: "2024-03-02", Value: fp(8)},
	})
	assert.Nil(t, got)
}

func TestGroupTimelineAveragesPerDay(t *testing.T) {
	got := GroupTimeline([]models.EmotionalStateSample{
		{UserID: 1, DateKey: "2024-03-02", MomentOfDay: "Morning", Anxiety: ip(5)},
		{UserID: 1, DateKey: "2024-03-01", MomentOfDay: "Morning", Anxiety: ip(2)},
		{UserID: 1, DateKey: "2024-03-01", MomentOfDay: "Afternoon", Anxiety: ip(4)},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-01", got[0].Date)
	require.NotNil(t, got[0].Anxiety)
	assert.InDelta(t, 3.0, *got[0].Anxiety, 1e-9)
	assert.Equal(t, "2024-03-02", got[1].Date)
	require.NotNil(t, got[1].Anxiety)
	assert.InDelta(t, 5.0, *got[1].Anxiety, 1e-9)
}

func TestGroupTimelineAttributesIndependent(t *testing.T) {
	got := GroupTimeline([]models.EmotionalStateSample{
		{UserID: 1, DateKey: "2024-03-01", Anxiety: ip(3), Mood: nil},
		{UserID: 1, DateKey: "2024-03-01", Anxiety: nil, Mood: nil},
	})

	require.Len(t, got, 1)
	require.NotNil(t, got[0].Anxiety)
	assert.InDelta(t, 3.0, *got[0].Anxiety, 1e-9)
	assert.Nil(t, got[0].Mood)
	assert.Nil(t, got[0].Focus)
	assert.Nil(t, got[0].Motivation)
}

func TestBuildMetricSummaryHydrationRate(t *testing.T) {
	data := RangeData{
		Habits: []models.HabitRecord{
			{DateKey: "2024-03-01", MorningWater: true, AfternoonWater: true},
			{DateKey: "2024-03-02", MorningWater: true},
			{DateKey: "2024-03-03", MorningWater: true},
		},
	}

	got := BuildMetricSummary(data)
	require.NotNil(t, got.HydrationRatePct)
	assert.InDelta(t, 66.67, *got.HydrationRatePct, 0.01)
}

func TestBuildMetricSummaryEmptyRangeHasNoRates(t *testing.T) {
	got := BuildMetricSummary(RangeData{})

	assert.Nil(t, got.HydrationRatePct)
	assert.Nil(t, got.GoalCompletionPct)
	assert.Nil(t, got.Sleep.Average)
	assert.Nil(t, got.Sleep.DeltaPct)
	assert.Zero(t, got.Temptations)
	assert.Zero(t, got.GratitudeDays)
	assert.Zero(t, got.JournalEntries)
}

func TestBuildMetricSummaryGoalCompletionSkipsUnevaluated(t *testing.T) {
	data := RangeData{
		Goals: []models.Goal{
			{DateKey: "2024-03-01", Completed: bp(true)},
			{DateKey: "2024-03-01", Completed: bp(false)},
			{DateKey: "2024-03-02", Completed: nil},
		},
	}

	got := BuildMetricSummary(data)
	require.NotNil(t, got.GoalCompletionPct)
	assert.InDelta(t, 50.0, *got.GoalCompletionPct, 1e-9)
}

func TestBuildMetricSummaryAllGoalsUnevaluated(t *testing.T) {
	data := RangeData{
		Goals: []models.Goal{{DateKey: "2024-03-01"}, {DateKey: "2024-03-02"}},
	}
	assert.Nil(t, BuildMetricSummary(data).GoalCompletionPct)
}

func TestBuildMetricSummaryGratitudeCountsDistinctDays(t *testing.T) {
	data := RangeData{
		Gratitude: []models.GratitudeEntry{
			{DateKey: "2024-03-01", Slot: 1},
			{DateKey: "2024-03-01", Slot: 2},
			{DateKey: "2024-03-03", Slot: 1},
		},
	}
	assert.Equal(t, 2, BuildMetricSummary(data).GratitudeDays)
}

func TestBuildMetricSummaryBehaviorTotals(t *testing.T) {
	data := RangeData{
		Counts: []DayBehaviorCounts{
			{DateKey: "2024-03-01", Exercises: 1, Studies: 2, Temptations: 1, Spiritual: 1},
			{DateKey: "2024-03-02", Studies: 1, Temptations: 2},
		},
	}

	got := BuildMetricSummary(data)
	assert.Equal(t, 3, got.Temptations)
	assert.Equal(t, 3, got.Studies)
	assert.Equal(t, 1, got.SpiritualPractices)
}

func TestBuildMetricSummaryMetricAverages(t *testing.T) {
	data := RangeData{
		Habits: []models.HabitRecord{
			{DateKey: "2024-03-01", SleepHours: fp(6), DailyEnergy: ip(2)},
			{DateKey: "2024-03-02", SleepHours: nil, DailyEnergy: ip(4)},
			{DateKey: "2024-03-03", SleepHours: fp(8), DailyEnergy: nil},
		},
	}

	got := BuildMetricSummary(data)
	require.NotNil(t, got.Sleep.Average)
	assert.InDelta(t, 7.0, *got.Sleep.Average, 1e-9)
	require.NotNil(t, got.Sleep.DeltaPct)
	assert.InDelta(t, 33.33, *got.Sleep.DeltaPct, 0.01)
	require.NotNil(t, got.Energy.Average)
	assert.InDelta(t, 3.0, *got.Energy.Average, 1e-9)
	require.NotNil(t, got.Energy.DeltaPct)
	assert.InDelta(t, 100.0, *got.Energy.DeltaPct, 1e-9)
}

func TestBuildWellnessSeries(t *testing.T) {
	got := BuildWellnessSeries([]models.HabitRecord{
		{DateKey: "2024-03-01", MorningWater: true, AfternoonWater: true, MicroReset: true},
		{DateKey: "2024-03-02", AfternoonWater: true},
		{DateKey: "2024-03-03"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, WellnessRow{Date: "2024-03-01", WaterCount: 2, MicroReset: 1}, got[0])
	assert.Equal(t, WellnessRow{Date: "2024-03-02", WaterCount: 1, MicroReset: 0}, got[1])
	assert.Equal(t, WellnessRow{Date: "2024-03-03", WaterCount: 0, MicroReset: 0}, got[2])
}

func TestBuildMetricSeriesKeepsGaps(t *testing.T) {
	got := BuildMetricSeries([]models.HabitRecord{
		{DateKey: "2024-03-01", SleepHours: fp(7.5)},
		{DateKey: "2024-03-02"},
	}, func(r models.HabitRecord) *float64 { return r.SleepHours })

	require.Len(t, got, 2)
	require.NotNil(t, got[0].Value)
	assert.InDelta(t, 7.5, *got[0].Value, 1e-9)
	assert.Nil(t, got[1].Value)
}

func TestBuildHabitComplianceSeriesZeroFill(t *testing.T) {
	got := BuildHabitComplianceSeries([]DayBehaviorCounts{
		{DateKey: "2024-03-01", Exercises: 2},
	})

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Exercises)
	assert.Zero(t, got[0].Studies)
	assert.Zero(t, got[0].Temptations)
	assert.Zero(t, got[0].Spiritual)
}
