package services

import (
	"errors"
	"math"
	"time"

	"github.com/dizzyfrogs/chunklog/models"
	"github.com/dizzyfrogs/chunklog/utils"

	"gorm.io/gorm"
)

var activityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// CalculateTargetCalories derives a daily calorie target from an
// explicit snapshot of the profile and current weight. Mifflin-St Jeor
// for BMR, activity multiplier for TDEE, then the goal adjustment.
func CalculateTargetCalories(user *models.User, weightKg float64, goalType string, now time.Time) (float64, error) {
	if !user.HasCompleteProfile() {
		return 0, ErrIncompleteProfile
	}

	age := utils.CalculateAge(*user.DateOfBirth, now)

	bmr := 10*weightKg + 6.25**user.HeightCm - 5*float64(age)
	if *user.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[user.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[models.ActivitySedentary]
	}
	tdee := bmr * multiplier

	switch goalType {
	case models.GoalWeightLoss:
		tdee -= 500
	case models.GoalMuscleGrowth:
		tdee += 300
	case models.GoalMaintenance:
	default:
		return 0, ErrInvalidInput
	}

	return math.Round(tdee), nil
}

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// GoalInput carries an explicit goal update. Nil targets leave the
// stored value untouched; the goal type is always overwritten.
type GoalInput struct {
	GoalType       string
	TargetWeight   *float64
	TargetCalories *float64
	TargetProtein  *float64
	TargetCarbs    *float64
	TargetFat      *float64
}

func (s *GoalService) Get(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Upsert writes the singleton goal row for a user.
func (s *GoalService) Upsert(userID uint, input GoalInput) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{
			UserID:         userID,
			GoalType:       input.GoalType,
			TargetWeight:   input.TargetWeight,
			TargetCalories: input.TargetCalories,
			TargetProtein:  input.TargetProtein,
			TargetCarbs:    input.TargetCarbs,
			TargetFat:      input.TargetFat,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.GoalType = input.GoalType
	if input.TargetWeight != nil {
		goal.TargetWeight = input.TargetWeight
	}
	if input.TargetCalories != nil {
		goal.TargetCalories = input.TargetCalories
	}
	if input.TargetProtein != nil {
		goal.TargetProtein = input.TargetProtein
	}
	if input.TargetCarbs != nil {
		goal.TargetCarbs = input.TargetCarbs
	}
	if input.TargetFat != nil {
		goal.TargetFat = input.TargetFat
	}

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// CalculateAndStore computes the target for the given snapshot and
// upserts goal type and target calories, preserving any stored macro
// targets.
func (s *GoalService) CalculateAndStore(user *models.User, weightKg float64, goalType string) (*models.Goal, error) {
	calories, err := CalculateTargetCalories(user, weightKg, goalType, time.Now())
	if err != nil {
		return nil, err
	}
	return s.Upsert(user.ID, GoalInput{GoalType: goalType, TargetCalories: &calories})
}

// Recalculate refreshes a previously stored goal after a profile or
// weight change. It is a no-op when the user has no goal yet; an
// incomplete profile is reported as ErrIncompleteProfile for the caller
// to swallow.
func (s *GoalService) Recalculate(user *models.User, weightKg float64) error {
	goal, err := s.Get(user.ID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = s.CalculateAndStore(user, weightKg, goal.GoalType)
	return err
}
