package services

import (
	"context"
	"sort"

	"backend/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// DashboardResult is everything one refresh hands to the presentation layer.
type DashboardResult struct {
	Range      DateRange             `json:"range"`
	Summary    Summary               `json:"summary"`
	Timeline   []TimelinePoint       `json:"timeline"`
	Sleep      []MetricPoint         `json:"sleep_trend"`
	Compliance []ComplianceRow       `json:"habit_compliance"`
	Wellness   []WellnessRow         `json:"wellness"`
	Journal    []models.JournalEntry `json:"journal"`
}

// Dashboard fetches the six record sets for the range concurrently, then
// aggregates. All-or-nothing: if any fetch fails the whole refresh fails and
// nothing is aggregated.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uint, rng DateRange) (*DashboardResult, error) {
	var data RangeData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
			Order("date_key ASC").
			Find(&data.Habits).Error
	})
	g.Go(func() (err error) {
		data.Counts, err = s.behaviorCounts(gctx, userID, rng)
		return err
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
			Order("date_key ASC").
			Find(&data.Timeline).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
			Find(&data.Goals).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
			Find(&data.Gratitude).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
			Order("date_key DESC").
			Find(&data.Journal).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardResult{
		Range:      rng,
		Summary:    BuildMetricSummary(data),
		Timeline:   GroupTimeline(data.Timeline),
		Sleep:      BuildMetricSeries(data.Habits, func(r models.HabitRecord) *float64 { return r.SleepHours }),
		Compliance: BuildHabitComplianceSeries(data.Counts),
		Wellness:   BuildWellnessSeries(data.Habits),
		Journal:    data.Journal,
	}, nil
}

// behaviorCounts rolls the four event tables up to one row per day.
func (s *AnalyticsService) behaviorCounts(ctx context.Context, userID uint, rng DateRange) ([]DayBehaviorCounts, error) {
	type dayCount struct {
		DateKey string
		N       int
	}

	count := func(model any) ([]dayCount, error) {
		var rows []dayCount
		err := s.db.WithContext(ctx).
			Model(model).
			Select("date_key, count(*) as n").
			Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, rng.Start, rng.End).
			Group("date_key").
			Scan(&rows).Error
		return rows, err
	}

	merged := map[string]*DayBehaviorCounts{}
	day := func(key string) *DayBehaviorCounts {
		if merged[key] == nil {
			merged[key] = &DayBehaviorCounts{DateKey: key}
		}
		return merged[key]
	}

	rows, err := count(&models.ExerciseSession{})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		day(r.DateKey).Exercises = r.N
	}

	rows, err = count(&models.StudySession{})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		day(r.DateKey).Studies = r.N
	}

	rows, err = count(&models.TemptationEvent{})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		day(r.DateKey).Temptations = r.N
	}

	rows, err = count(&models.SpiritualPractice{})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		day(r.DateKey).Spiritual = r.N
	}

	out := make([]DayBehaviorCounts, 0, len(merged))
	for _, c := range merged {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateKey < out[j].DateKey })
	return out, nil
}
