package models

import (
	"time"

	"gorm.io/gorm"
)

// HabitRecord is the single per-user per-day fact row behind every check-in.
// Measurements are pointers: nil means "never logged", which the analytics
// layer must keep distinct from a real zero.
type HabitRecord struct {
	gorm.Model
	UserID  uint   `gorm:"not null;uniqueIndex:idx_habit_user_date"`
	DateKey string `gorm:"size:10;not null;uniqueIndex:idx_habit_user_date"` // YYYY-MM-DD

	SleepHours    *float64
	SleepQuality  *int // 1-5
	DailyEnergy   *int // 1-5
	Anxiety       *int // 1-5
	Focus         *int // 1-5
	Motivation    *int // 1-5
	MentalClarity *int // 1-5

	MorningRoutineScore *float64 // 0-100
	NightRoutineScore   *float64 // 0-100

	MorningWater   bool
	AfternoonWater bool
	MicroReset     bool

	MorningReflection string `gorm:"type:text"`
	EveningReflection string `gorm:"type:text"`

	MainGoal      string
	SecondaryGoal string
	FocusWord     string

	MorningLoggedAt   *time.Time
	AfternoonLoggedAt *time.Time
	EveningLoggedAt   *time.Time
}
