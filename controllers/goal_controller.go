package controllers

import (
	"net/http"

	"github.com/dizzyfrogs/chunklog/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
	users *services.UserService
}

func NewGoalController(goals *services.GoalService, users *services.UserService) *GoalController {
	return &GoalController{goals: goals, users: users}
}

type goalInput struct {
	GoalType       string   `json:"goal_type" binding:"required,oneof=weight_loss maintenance muscle_growth"`
	TargetWeight   *float64 `json:"target_weight" binding:"omitempty,gt=0"`
	TargetCalories *float64 `json:"target_calories" binding:"omitempty,gt=0"`
	TargetProtein  *float64 `json:"target_protein" binding:"omitempty,gte=0"`
	TargetCarbs    *float64 `json:"target_carbs" binding:"omitempty,gte=0"`
	TargetFat      *float64 `json:"target_fat" binding:"omitempty,gte=0"`
}

type calculateInput struct {
	GoalType        string  `json:"goal_type" binding:"required,oneof=weight_loss maintenance muscle_growth"`
	CurrentWeightKg float64 `json:"current_weight_kg" binding:"required,gt=0"`
}

func (ctl *GoalController) Get(c *gin.Context) {
	goal, err := ctl.goals.Get(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ctl *GoalController) Set(c *gin.Context) {
	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.Upsert(currentUserID(c), services.GoalInput{
		GoalType:       input.GoalType,
		TargetWeight:   input.TargetWeight,
		TargetCalories: input.TargetCalories,
		TargetProtein:  input.TargetProtein,
		TargetCarbs:    input.TargetCarbs,
		TargetFat:      input.TargetFat,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Calculate derives target calories from the profile and the supplied
// current weight, then stores the result.
func (ctl *GoalController) Calculate(c *gin.Context) {
	var input calculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.Get(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	goal, err := ctl.goals.CalculateAndStore(user, input.CurrentWeightKg, input.GoalType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}
