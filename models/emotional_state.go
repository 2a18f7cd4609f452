package models

import "gorm.io/gorm"

// EmotionalStateSample is a point-in-time mood snapshot. A day can carry
// several (morning and afternoon check-ins each record one), and any
// attribute may be left blank independently of the others.
type EmotionalStateSample struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	MomentOfDay string `gorm:"size:16"`
	Anxiety     *int   // 1-5
	Focus       *int   // 1-5
	Motivation  *int   // 1-5
	Mood        *int   // 1-5
}
