package models

import "gorm.io/gorm"

// One row per logged event. Per-day counts for the dashboard come from a
// GROUP BY over these tables, not from a stored rollup.

type ExerciseSession struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	MomentOfDay string `gorm:"size:16"` // Morning | Afternoon | Evening
	Kind        string // Cardio, Fuerza, Descanso...
	MuscleGroup string
	DurationMin *int
	DistanceKM  *float64
	Intensity   *int // 1-5
	SkipReason  string
	Notes       string `gorm:"type:text"`
}

type StudySession struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	Topic       string
	DurationMin *int
	Quality     *int // 1-5
	Notes       string `gorm:"type:text"`
}

type TemptationEvent struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	Kind      string // from the TemptationType catalog
	Trigger   string // from the TriggerType catalog
	Intensity *int   // 1-5
	Resisted  bool
	Notes     string `gorm:"type:text"`
}

type SpiritualPractice struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	MomentOfDay string `gorm:"size:16"`
	Practice    string // Devocional, Oracion, Lectura...
	Book        string
	Chapter     *int
	Insight     string `gorm:"type:text"`
}
