package services

import (
	"errors"
	"time"

	"github.com/dizzyfrogs/chunklog/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type WeightLogService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewWeightLogService(db *gorm.DB, goals *GoalService) *WeightLogService {
	return &WeightLogService{db: db, goals: goals}
}

// Create records a weight observation. If the user already has a goal,
// its targets are recomputed against the new weight; the recompute
// never fails the write — by the time it runs the row is committed.
func (s *WeightLogService) Create(user *models.User, date time.Time, weight float64) (*models.WeightLog, error) {
	if weight <= 0 {
		return nil, ErrInvalidInput
	}
	if date.IsZero() {
		date = time.Now()
	}

	entry := models.WeightLog{
		Date:   date,
		Weight: weight,
		UserID: user.ID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	if err := s.goals.Recalculate(user, weight); err != nil {
		if errors.Is(err, ErrIncompleteProfile) {
			log.Debug().Uint("user_id", user.ID).Msg("skipping goal recalculation: profile incomplete")
		} else {
			log.Warn().Err(err).Uint("user_id", user.ID).Msg("goal recalculation failed")
		}
	}

	return &entry, nil
}

// List returns observations newest first; entries on the same date are
// ordered by insertion time.
func (s *WeightLogService) List(userID uint, skip, limit int) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		Offset(skip).Limit(limit).
		Find(&logs).Error
	return logs, err
}

// Latest returns the most recent observation, or ErrNotFound.
func (s *WeightLogService) Latest(userID uint) (*models.WeightLog, error) {
	var entry models.WeightLog
	err := s.db.Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WeightLogService) Delete(userID, logID uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.WeightLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
