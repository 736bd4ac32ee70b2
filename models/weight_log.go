package models

import (
	"time"

	"gorm.io/gorm"
)

type WeightLog struct {
	gorm.Model
	Date   time.Time `gorm:"type:date;index;not null"`
	Weight float64   `gorm:"not null"`

	UserID uint `gorm:"index;not null"`
}
