package models

import "gorm.io/gorm"

// Reference catalogs backing the temptation check-in selectors. Seeded with
// defaults at startup; editable per deployment, never per user.

type TemptationType struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}

type TriggerType struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null"`
	Category string `gorm:"size:32"` // Emocional, Fisico, Digital, Social...
}
