package services

import (
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// GetOrCreateHabitRecord returns the day's fact row, creating an empty one
// on first touch. Every check-in for a date lands on the same row.
func GetOrCreateHabitRecord(userID uint, dateKey string) (*models.HabitRecord, error) {
	record := models.HabitRecord{UserID: userID, DateKey: dateKey}
	err := config.DB.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		FirstOrCreate(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type MorningCheckInInput struct {
	SleepHours    *float64 `json:"sleep_hours"`
	SleepQuality  *int     `json:"sleep_quality"`
	Energy        *int     `json:"energy"`
	Anxiety       *int     `json:"anxiety"`
	Focus         *int     `json:"focus"`
	Motivation    *int     `json:"motivation"`
	MentalClarity *int     `json:"mental_clarity"`
	Mood          *int     `json:"mood"`

	Reflection string          `json:"reflection"`
	Water      bool            `json:"water"`
	Routine    map[string]bool `json:"routine"`

	MainGoal      string `json:"main_goal"`
	SecondaryGoal string `json:"secondary_goal"`
	FocusWord     string `json:"focus_word"`

	Reading *ScriptureReadingInput `json:"reading"`
}

type ScriptureReadingInput struct {
	Book    string `json:"book"`
	Chapter *int   `json:"chapter"`
	Insight string `json:"insight"`
}

func SubmitMorningCheckIn(userID uint, dateKey string, in MorningCheckInInput) error {
	record, err := GetOrCreateHabitRecord(userID, dateKey)
	if err != nil {
		return err
	}

	now := time.Now()
	record.SleepHours = in.SleepHours
	record.SleepQuality = in.SleepQuality
	record.DailyEnergy = in.Energy
	record.Anxiety = in.Anxiety
	record.Focus = in.Focus
	record.Motivation = in.Motivation
	record.MentalClarity = in.MentalClarity
	record.MorningReflection = in.Reflection
	record.MorningWater = in.Water
	record.MainGoal = in.MainGoal
	record.SecondaryGoal = in.SecondaryGoal
	record.FocusWord = in.FocusWord
	record.MorningLoggedAt = &now
	if len(in.Routine) > 0 {
		score := utils.RoutineScore(in.Routine)
		record.MorningRoutineScore = &score
	}
	if err := config.DB.Save(record).Error; err != nil {
		return err
	}

	sample := models.EmotionalStateSample{
		UserID:      userID,
		DateKey:     dateKey,
		MomentOfDay: "Morning",
		Anxiety:     in.Anxiety,
		Focus:       in.Focus,
		Motivation:  in.Motivation,
		Mood:        in.Mood,
	}
	if err := config.DB.Create(&sample).Error; err != nil {
		return err
	}

	type slot struct {
		kind, desc string
		order      int
	}
	for _, g := range []slot{
		{"Main", in.MainGoal, 1},
		{"Secondary", in.SecondaryGoal, 2},
		{"Focus", in.FocusWord, 3},
	} {
		if g.desc == "" {
			continue
		}
		goal := models.Goal{
			UserID:      userID,
			DateKey:     dateKey,
			Kind:        g.kind,
			Slot:        g.order,
			Description: g.desc,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return err
		}
	}

	if in.Reading != nil {
		if err := LogSpiritualPractice(userID, dateKey, SpiritualPracticeInput{
			MomentOfDay: "Morning",
			Practice:    "Devocional",
			Book:        in.Reading.Book,
			Chapter:     in.Reading.Chapter,
			Insight:     in.Reading.Insight,
		}); err != nil {
			return err
		}
	}
	return nil
}

type AfternoonCheckInInput struct {
	Anxiety    *int `json:"anxiety"`
	Focus      *int `json:"focus"`
	Motivation *int `json:"motivation"`
	Mood       *int `json:"mood"`

	Water      bool `json:"water"`
	MicroReset bool `json:"micro_reset"`
}

func SubmitAfternoonCheckIn(userID uint, dateKey string, in AfternoonCheckInInput) error {
	record, err := GetOrCreateHabitRecord(userID, dateKey)
	if err != nil {
		return err
	}

	now := time.Now()
	record.AfternoonWater = in.Water
	record.MicroReset = in.MicroReset
	record.AfternoonLoggedAt = &now
	if err := config.DB.Save(record).Error; err != nil {
		return err
	}

	sample := models.EmotionalStateSample{
		UserID:      userID,
		DateKey:     dateKey,
		MomentOfDay: "Afternoon",
		Anxiety:     in.Anxiety,
		Focus:       in.Focus,
		Motivation:  in.Motivation,
		Mood:        in.Mood,
	}
	return config.DB.Create(&sample).Error
}

type EveningCheckInInput struct {
	Anxiety    *int `json:"anxiety"`
	Focus      *int `json:"focus"`
	Motivation *int `json:"motivation"`
	Mood       *int `json:"mood"`

	Routine    map[string]bool `json:"routine"`
	Reflection string          `json:"reflection"`
	Gratitudes []string        `json:"gratitudes"`

	// goal ID -> completed verdict; untouched goals stay unevaluated
	GoalVerdicts map[uint]bool `json:"goal_verdicts"`

	Reading *ScriptureReadingInput `json:"reading"`
}

func SubmitEveningCheckIn(userID uint, dateKey string, in EveningCheckInInput) error {
	record, err := GetOrCreateHabitRecord(userID, dateKey)
	if err != nil {
		return err
	}

	now := time.Now()
	record.EveningReflection = in.Reflection
	record.EveningLoggedAt = &now
	if len(in.Routine) > 0 {
		score := utils.RoutineScore(in.Routine)
		record.NightRoutineScore = &score
	}
	if err := config.DB.Save(record).Error; err != nil {
		return err
	}

	sample := models.EmotionalStateSample{
		UserID:      userID,
		DateKey:     dateKey,
		MomentOfDay: "Evening",
		Anxiety:     in.Anxiety,
		Focus:       in.Focus,
		Motivation:  in.Motivation,
		Mood:        in.Mood,
	}
	if err := config.DB.Create(&sample).Error; err != nil {
		return err
	}

	for i, text := range in.Gratitudes {
		if text == "" {
			continue
		}
		entry := models.GratitudeEntry{
			UserID:  userID,
			DateKey: dateKey,
			Slot:    i + 1,
			Text:    text,
		}
		if err := config.DB.Create(&entry).Error; err != nil {
			return err
		}
	}

	for goalID, completed := range in.GoalVerdicts {
		if err := SetGoalVerdict(userID, goalID, completed); err != nil {
			return err
		}
	}

	if in.Reading != nil {
		if err := LogSpiritualPractice(userID, dateKey, SpiritualPracticeInput{
			MomentOfDay: "Evening",
			Practice:    "Devocional",
			Book:        in.Reading.Book,
			Chapter:     in.Reading.Chapter,
			Insight:     in.Reading.Insight,
		}); err != nil {
			return err
		}
	}
	return nil
}

// TodayView bundles everything the home screen shows for one date.
type TodayView struct {
	Record     *models.HabitRecord     `json:"record"`
	Goals      []models.Goal           `json:"goals"`
	Gratitudes []models.GratitudeEntry `json:"gratitudes"`
	Scripture  utils.Scripture         `json:"scripture"`
}

func GetTodayView(userID uint, dateKey string, now time.Time) (*TodayView, error) {
	record, err := GetOrCreateHabitRecord(userID, dateKey)
	if err != nil {
		return nil, err
	}

	var goals []models.Goal
	if err := config.DB.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		Order("slot ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}

	var gratitudes []models.GratitudeEntry
	if err := config.DB.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		Order("slot ASC").
		Find(&gratitudes).Error; err != nil {
		return nil, err
	}

	return &TodayView{
		Record:     record,
		Goals:      goals,
		Gratitudes: gratitudes,
		Scripture:  utils.ScriptureOfDay(now),
	}, nil
}
