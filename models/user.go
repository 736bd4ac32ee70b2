package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Profile fields stay nil until the user fills them in
	DateOfBirth   *time.Time
	Gender        *string
	HeightCm      *float64
	ActivityLevel string `gorm:"default:sedentary"`

	Foods      []Food      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	FoodLogs   []FoodLog   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WeightLogs []WeightLog `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// HasCompleteProfile reports whether the fields the goal calculation
// needs (birth date, gender, height) are all present.
func (u *User) HasCompleteProfile() bool {
	return u.DateOfBirth != nil && u.Gender != nil && u.HeightCm != nil
}
