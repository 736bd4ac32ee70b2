package services

import (
	"errors"
	"time"

	"github.com/dizzyfrogs/chunklog/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService struct {
	db      *gorm.DB
	goals   *GoalService
	weights *WeightLogService
}

func NewUserService(db *gorm.DB, goals *GoalService, weights *WeightLogService) *UserService {
	return &UserService{db: db, goals: goals, weights: weights}
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate enumerates every updatable profile field; nothing else
// on the user row can be touched through this path.
type ProfileUpdate struct {
	DateOfBirth   *time.Time
	Gender        *string
	HeightCm      *float64
	ActivityLevel *string
}

// UpdateProfile applies the supplied fields and, if the user already
// has a goal, recomputes it against the latest weight observation.
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if update.DateOfBirth != nil {
		user.DateOfBirth = update.DateOfBirth
	}
	if update.Gender != nil {
		user.Gender = update.Gender
	}
	if update.HeightCm != nil {
		user.HeightCm = update.HeightCm
	}
	if update.ActivityLevel != nil {
		user.ActivityLevel = *update.ActivityLevel
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	s.recalculateGoal(user)

	return user, nil
}

func (s *UserService) recalculateGoal(user *models.User) {
	latest, err := s.weights.Latest(user.ID)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to load latest weight for goal recalculation")
		return
	}

	if err := s.goals.Recalculate(user, latest.Weight); err != nil && !errors.Is(err, ErrIncompleteProfile) {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("goal recalculation failed")
	}
}

// Delete removes the account and everything it owns in one
// transaction. Rows are removed for real, not soft-deleted: the unique
// indexes on username/email are not partial, so a lingering
// soft-deleted row would squat the identity and break re-registration.
func (s *UserService) Delete(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.FoodLog{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("owner_id = ?", userID).Delete(&models.Food{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.WeightLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Goal{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
}
