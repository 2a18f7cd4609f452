package services

import (
	"math"
	"sort"

	"backend/models"
)

// Pure aggregation over already-fetched rows. Every function here is total:
// sparse or empty input yields nil results, never an error and never a fake
// zero. Callers render nil as "no data".

// MetricPoint is one day of a single metric. Value nil means the metric was
// not logged that day.
type MetricPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Average returns the mean of the non-nil, non-NaN values, or nil when none
// remain. Order of the input does not matter.
func Average(values []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil || math.IsNaN(*v) {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// PercentDelta compares the first and last valid values of a chronological
// series: ((last - first) / first) * 100. It returns nil when no valid value
// exists or the first valid value is zero. A series with a single valid
// value yields 0, since first and last coincide.
func PercentDelta(series []MetricPoint) *float64 {
	var first, last *float64
	for _, p := range series {
		if p.Value != nil && !math.IsNaN(*p.Value) {
			first = p.Value
			break
		}
	}
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Value != nil && !math.IsNaN(*series[i].Value) {
			last = series[i].Value
			break
		}
	}
	if first == nil || last == nil || *first == 0 {
		return nil
	}
	delta := (*last - *first) / *first * 100
	return &delta
}

// TimelinePoint is one calendar day of the emotional timeline, each
// attribute averaged over that day's samples independently.
type TimelinePoint struct {
	Date       string   `json:"date"`
	Anxiety    *float64 `json:"anxiety"`
	Focus      *float64 `json:"focus"`
	Motivation *float64 `json:"motivation"`
	Mood       *float64 `json:"mood"`
}

// GroupTimeline collapses same-day emotional samples into one point per day,
// ascending by date. An attribute missing from every sample of a day comes
// out nil without affecting the other attributes.
func GroupTimeline(samples []models.EmotionalStateSample) []TimelinePoint {
	type bucket struct {
		anxiety, focus, motivation, mood []*float64
	}
	buckets := map[string]*bucket{}
	for _, s := range samples {
		b := buckets[s.DateKey]
		if b == nil {
			b = &bucket{}
			buckets[s.DateKey] = b
		}
		b.anxiety = append(b.anxiety, ordinal(s.Anxiety))
		b.focus = append(b.focus, ordinal(s.Focus))
		b.motivation = append(b.motivation, ordinal(s.Motivation))
		b.mood = append(b.mood, ordinal(s.Mood))
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]TimelinePoint, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]
		out = append(out, TimelinePoint{
			Date:       d,
			Anxiety:    Average(b.anxiety),
			Focus:      Average(b.focus),
			Motivation: Average(b.motivation),
			Mood:       Average(b.mood),
		})
	}
	return out
}

// MetricAvg pairs a range average with the percent change from the first to
// the last valid sample of the range.
type MetricAvg struct {
	Average  *float64 `json:"average"`
	DeltaPct *float64 `json:"delta_pct"`
}

type Summary struct {
	Sleep          MetricAvg `json:"sleep"`
	Energy         MetricAvg `json:"energy"`
	Anxiety        MetricAvg `json:"anxiety"`
	MorningRoutine MetricAvg `json:"morning_routine"`
	NightRoutine   MetricAvg `json:"night_routine"`

	HydrationRatePct   *float64 `json:"hydration_rate_pct"`
	Temptations        int      `json:"temptations"`
	Studies            int      `json:"studies"`
	SpiritualPractices int      `json:"spiritual_practices"`
	GratitudeDays      int      `json:"gratitude_days"`
	GoalCompletionPct  *float64 `json:"goal_completion_pct"`
	JournalEntries     int      `json:"journal_entries"`
}

// DayBehaviorCounts is one day's event totals, scanned from a GROUP BY over
// the event tables.
type DayBehaviorCounts struct {
	DateKey     string `json:"date"`
	Exercises   int    `json:"exercises"`
	Studies     int    `json:"studies"`
	Temptations int    `json:"temptations"`
	Spiritual   int    `json:"spiritual"`
}

// RangeData is the in-memory snapshot a dashboard refresh aggregates over.
type RangeData struct {
	Habits    []models.HabitRecord
	Counts    []DayBehaviorCounts
	Timeline  []models.EmotionalStateSample
	Goals     []models.Goal
	Gratitude []models.GratitudeEntry
	Journal   []models.JournalEntry
}

// BuildMetricSummary computes every per-range statistic the dashboard cards
// show. Habit records must be in ascending date order; the delta computation
// relies on it.
func BuildMetricSummary(data RangeData) Summary {
	sleep := BuildMetricSeries(data.Habits, func(r models.HabitRecord) *float64 { return r.SleepHours })
	energy := BuildMetricSeries(data.Habits, func(r models.HabitRecord) *float64 { return ordinal(r.DailyEnergy) })
	anxiety := BuildMetricSeries(data.Habits, func(r models.HabitRecord) *float64 { return ordinal(r.Anxiety) })
	morning := BuildMetricSeries(data.Habits, func(r models.HabitRecord) *float64 { return r.MorningRoutineScore })
	night := BuildMetricSeries(data.Habits, func(r models.HabitRecord) *float64 { return r.NightRoutineScore })

	out := Summary{
		Sleep:          metricAvg(sleep),
		Energy:         metricAvg(energy),
		Anxiety:        metricAvg(anxiety),
		MorningRoutine: metricAvg(morning),
		NightRoutine:   metricAvg(night),
	}

	// Two water slots per tracked day; no tracked days means no rate.
	if n := len(data.Habits); n > 0 {
		taken := 0
		for _, r := range data.Habits {
			if r.MorningWater {
				taken++
			}
			if r.AfternoonWater {
				taken++
			}
		}
		rate := round2(float64(taken) / float64(2*n) * 100)
		out.HydrationRatePct = &rate
	}

	for _, c := range data.Counts {
		out.Temptations += c.Temptations
		out.Studies += c.Studies
		out.SpiritualPractices += c.Spiritual
	}

	// Distinct days, not entry count: three gratitudes on one evening still
	// make one grateful day.
	days := map[string]struct{}{}
	for _, g := range data.Gratitude {
		days[g.DateKey] = struct{}{}
	}
	out.GratitudeDays = len(days)

	evaluated, done := 0, 0
	for _, g := range data.Goals {
		if g.Completed == nil {
			continue
		}
		evaluated++
		if *g.Completed {
			done++
		}
	}
	if evaluated > 0 {
		rate := round2(float64(done) / float64(evaluated) * 100)
		out.GoalCompletionPct = &rate
	}

	out.JournalEntries = len(data.Journal)
	return out
}

// BuildMetricSeries flattens habit records into (date, value) points for one
// metric, keeping nil values so gaps stay visible in charts.
func BuildMetricSeries(records []models.HabitRecord, pick func(models.HabitRecord) *float64) []MetricPoint {
	out := make([]MetricPoint, 0, len(records))
	for _, r := range records {
		out = append(out, MetricPoint{Date: r.DateKey, Value: pick(r)})
	}
	return out
}

// ComplianceRow is one day of behavior counts shaped for the stacked chart.
// Missing counts coalesce to zero; unlike measurements, a count has a
// natural zero.
type ComplianceRow struct {
	Date        string `json:"date"`
	Exercises   int    `json:"exercises"`
	Studies     int    `json:"studies"`
	Temptations int    `json:"temptations"`
	Spiritual   int    `json:"spiritual"`
}

func BuildHabitComplianceSeries(counts []DayBehaviorCounts) []ComplianceRow {
	out := make([]ComplianceRow, 0, len(counts))
	for _, c := range counts {
		out = append(out, ComplianceRow{
			Date:        c.DateKey,
			Exercises:   c.Exercises,
			Studies:     c.Studies,
			Temptations: c.Temptations,
			Spiritual:   c.Spiritual,
		})
	}
	return out
}

// WellnessRow carries the per-day water count (0-2) and micro-reset flag.
type WellnessRow struct {
	Date       string `json:"date"`
	WaterCount int    `json:"water_count"`
	MicroReset int    `json:"micro_reset"`
}

func BuildWellnessSeries(records []models.HabitRecord) []WellnessRow {
	out := make([]WellnessRow, 0, len(records))
	for _, r := range records {
		row := WellnessRow{Date: r.DateKey}
		if r.MorningWater {
			row.WaterCount++
		}
		if r.AfternoonWater {
			row.WaterCount++
		}
		if r.MicroReset {
			row.MicroReset = 1
		}
		out = append(out, row)
	}
	return out
}

func metricAvg(series []MetricPoint) MetricAvg {
	values := make([]*float64, 0, len(series))
	for _, p := range series {
		values = append(values, p.Value)
	}
	return MetricAvg{
		Average:  roundPtr(Average(values)),
		DeltaPct: roundPtr(PercentDelta(series)),
	}
}

func ordinal(p *int) *float64 {
	if p == nil {
		return nil
	}
	v := float64(*p)
	return &v
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
