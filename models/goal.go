package models

import "time"

const (
	GoalWeightLoss   = "weight_loss"
	GoalMaintenance  = "maintenance"
	GoalMuscleGrowth = "muscle_growth"
)

// Goal holds a user's calorie/macro targets. UserID is both primary key
// and foreign key, so a user can only ever have one row; writes go
// through an upsert.
type Goal struct {
	UserID         uint   `gorm:"primaryKey;autoIncrement:false"`
	GoalType       string `gorm:"not null"`
	TargetWeight   *float64
	TargetCalories *float64
	TargetProtein  *float64
	TargetCarbs    *float64
	TargetFat      *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
