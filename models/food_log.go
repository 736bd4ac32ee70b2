package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLog records "user ate N servings of food on date". Date is the
// logical day being logged against (possibly in the past); CreatedAt is
// the insertion timestamp and breaks ties between same-day entries.
type FoodLog struct {
	gorm.Model
	Date     time.Time `gorm:"type:date;index;not null"`
	Servings float64   `gorm:"default:1"`

	UserID uint `gorm:"index;not null"`
	FoodID uint `gorm:"index;not null"`
	Food   Food
}
