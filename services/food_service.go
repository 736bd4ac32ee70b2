package services

import (
	"errors"
	"strings"

	"github.com/dizzyfrogs/chunklog/models"

	"gorm.io/gorm"
)

// FoodLookup is the external nutrition database the merged search
// consults. Failures inside the lookup must degrade to zero results.
type FoodLookup interface {
	SearchBestEffort(query string) []ExternalFood
}

type FoodService struct {
	db     *gorm.DB
	lookup FoodLookup
}

func NewFoodService(db *gorm.DB, lookup FoodLookup) *FoodService {
	return &FoodService{db: db, lookup: lookup}
}

type FoodInput struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// FoodUpdate is a partial update; nil fields are left as stored.
type FoodUpdate struct {
	Name     *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// SearchResult tags each hit with its provenance. Library foods carry a
// local id; external hits carry the upstream identifier instead.
type SearchResult struct {
	ID            *uint   `json:"id"`
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	ExternalID    string  `json:"external_id,omitempty"`
	IsFromLibrary bool    `json:"is_from_library"`
}

func (s *FoodService) Create(ownerID uint, input FoodInput) (*models.Food, error) {
	food := models.Food{
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		OwnerID:  ownerID,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List(ownerID uint, skip, limit int) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.Where("owner_id = ?", ownerID).
		Offset(skip).Limit(limit).
		Find(&foods).Error
	return foods, err
}

// Get is owner-scoped; a food owned by someone else is reported exactly
// like a missing one.
func (s *FoodService) Get(ownerID, foodID uint) (*models.Food, error) {
	var food models.Food
	err := s.db.Where("id = ? AND owner_id = ?", foodID, ownerID).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Update(ownerID, foodID uint, update FoodUpdate) (*models.Food, error) {
	food, err := s.Get(ownerID, foodID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		food.Name = *update.Name
	}
	if update.Calories != nil {
		food.Calories = *update.Calories
	}
	if update.Protein != nil {
		food.Protein = *update.Protein
	}
	if update.Carbs != nil {
		food.Carbs = *update.Carbs
	}
	if update.Fat != nil {
		food.Fat = *update.Fat
	}

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes a food and its logs in one transaction.
func (s *FoodService) Delete(ownerID, foodID uint) error {
	food, err := s.Get(ownerID, foodID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.FoodLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(food).Error
	})
}

// Search merges external database hits with the owner's library.
// Queries under two characters return nothing without touching the
// external lookup. External results come first, then library matches.
func (s *FoodService) Search(ownerID uint, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []SearchResult{}, nil
	}

	results := []SearchResult{}
	for _, ext := range s.lookup.SearchBestEffort(query) {
		results = append(results, SearchResult{
			Name:          ext.Name,
			Calories:      ext.Calories,
			Protein:       ext.Protein,
			Carbs:         ext.Carbs,
			Fat:           ext.Fat,
			ExternalID:    ext.ExternalID,
			IsFromLibrary: false,
		})
	}

	var foods []models.Food
	err := s.db.Where("owner_id = ? AND LOWER(name) LIKE ?", ownerID, "%"+strings.ToLower(query)+"%").
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	for i := range foods {
		food := foods[i]
		id := food.ID
		results = append(results, SearchResult{
			ID:            &id,
			Name:          food.Name,
			Calories:      food.Calories,
			Protein:       food.Protein,
			Carbs:         food.Carbs,
			Fat:           food.Fat,
			IsFromLibrary: true,
		})
	}

	return results, nil
}
