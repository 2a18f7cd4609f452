package models

import "gorm.io/gorm"

type JournalEntry struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	DateKey string `gorm:"size:10;index;not null"`

	Title           string
	Body            string `gorm:"type:text"`
	Category        string `gorm:"size:32"`
	DominantEmotion string `gorm:"size:32"`
	AttachmentURL   string
}
