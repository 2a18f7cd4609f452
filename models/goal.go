package models

import "gorm.io/gorm"

// Goal is one goal slot for one day. Completed stays nil until the evening
// check-in passes a verdict; completion-rate analytics only count rows where
// a verdict exists.
type Goal struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	Kind        string `gorm:"size:16"` // Main | Secondary | Focus
	Slot        int
	Description string
	Completed   *bool
}
