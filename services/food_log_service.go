package services

import (
	"errors"
	"time"

	"github.com/dizzyfrogs/chunklog/models"

	"gorm.io/gorm"
)

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// FoodLogInput resolves against exactly one food source: a library id,
// or an external result that gets materialized into the library first.
type FoodLogInput struct {
	Date     time.Time
	Servings float64
	FoodID   *uint
	External *ExternalFood
}

func (s *FoodLogService) Create(userID uint, input FoodLogInput) (*models.FoodLog, error) {
	if input.Servings <= 0 {
		input.Servings = 1
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	var entry *models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food

		switch {
		case input.FoodID != nil:
			err := tx.Where("id = ? AND owner_id = ?", *input.FoodID, userID).First(&food).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
		case input.External != nil && input.External.Name != "":
			// Materialize-on-use: the external result becomes a
			// library food the log can reference.
			food = models.Food{
				Name:     input.External.Name,
				Calories: input.External.Calories,
				Protein:  input.External.Protein,
				Carbs:    input.External.Carbs,
				Fat:      input.External.Fat,
				OwnerID:  userID,
			}
			if err := tx.Create(&food).Error; err != nil {
				return err
			}
		default:
			return ErrInvalidInput
		}

		entry = &models.FoodLog{
			Date:     input.Date,
			Servings: input.Servings,
			UserID:   userID,
			FoodID:   food.ID,
			Food:     food,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries for a single logical date, each with
// its food preloaded.
func (s *FoodLogService) List(userID uint, date time.Time, skip, limit int) ([]models.FoodLog, error) {
	day := date.Format(time.DateOnly)

	var logs []models.FoodLog
	err := s.db.Preload("Food").
		Where("user_id = ? AND date = ?", userID, day).
		Order("created_at asc").
		Offset(skip).Limit(limit).
		Find(&logs).Error
	return logs, err
}

// Delete reports whether a row was removed; deleting an absent id is a
// no-op, not an error.
func (s *FoodLogService) Delete(userID, logID uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.FoodLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
