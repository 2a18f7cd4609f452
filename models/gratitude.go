package models

import "gorm.io/gorm"

type GratitudeEntry struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	Slot int
	Text string `gorm:"type:text"`
}
