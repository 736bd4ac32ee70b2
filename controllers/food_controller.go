package controllers

import (
	"net/http"

	"github.com/dizzyfrogs/chunklog/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

type foodInput struct {
	Name string `json:"name" binding:"required"`
	// Pointer so an explicit zero still counts as supplied
	Calories *float64 `json:"calories" binding:"required,gte=0"`
	Protein  float64  `json:"protein" binding:"gte=0"`
	Carbs    float64  `json:"carbs" binding:"gte=0"`
	Fat      float64  `json:"fat" binding:"gte=0"`
}

type foodUpdateInput struct {
	Name     *string  `json:"name"`
	Calories *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein  *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat      *float64 `json:"fat" binding:"omitempty,gte=0"`
}

func (ctl *FoodController) Create(c *gin.Context) {
	var input foodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := ctl.foods.Create(currentUserID(c), services.FoodInput{
		Name:     input.Name,
		Calories: *input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (ctl *FoodController) List(c *gin.Context) {
	skip, limit := parsePagination(c)
	foods, err := ctl.foods.List(currentUserID(c), skip, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Search merges the external nutrition database with the user's own
// library; see FoodService.Search.
func (ctl *FoodController) Search(c *gin.Context) {
	results, err := ctl.foods.Search(currentUserID(c), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (ctl *FoodController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	food, err := ctl.foods.Get(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (ctl *FoodController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input foodUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := ctl.foods.Update(currentUserID(c), id, services.FoodUpdate{
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (ctl *FoodController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.foods.Delete(currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
