package models

import "gorm.io/gorm"

// Food is one reusable entry in a user's personal library. Foods are
// created directly, or materialized from an external search result the
// first time a log references it.
type Food struct {
	gorm.Model
	Name     string  `gorm:"index;not null"`
	Calories float64 `gorm:"not null"`
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`

	OwnerID uint      `gorm:"index;not null"`
	Logs    []FoodLog `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
}
