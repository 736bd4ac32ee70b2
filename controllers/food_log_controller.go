package controllers

import (
	"net/http"
	"time"

	"github.com/dizzyfrogs/chunklog/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	logs *services.FoodLogService
}

func NewFoodLogController(logs *services.FoodLogService) *FoodLogController {
	return &FoodLogController{logs: logs}
}

type externalFoodInput struct {
	Name       string   `json:"name" binding:"required"`
	Calories   *float64 `json:"calories" binding:"required,gte=0"`
	Protein    float64  `json:"protein" binding:"gte=0"`
	Carbs      float64  `json:"carbs" binding:"gte=0"`
	Fat        float64  `json:"fat" binding:"gte=0"`
	ExternalID string   `json:"external_id"`
}

type foodLogInput struct {
	LogDate      *string            `json:"log_date"`
	Servings     float64            `json:"servings"`
	FoodID       *uint              `json:"food_id"`
	ExternalFood *externalFoodInput `json:"external_food"`
}

func (ctl *FoodLogController) Create(c *gin.Context) {
	var input foodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svcInput := services.FoodLogInput{
		Servings: input.Servings,
		FoodID:   input.FoodID,
	}
	if input.LogDate != nil {
		date, err := parseDate(*input.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "log_date must be YYYY-MM-DD"})
			return
		}
		svcInput.Date = date
	}
	if input.ExternalFood != nil {
		svcInput.External = &services.ExternalFood{
			Name:       input.ExternalFood.Name,
			Calories:   *input.ExternalFood.Calories,
			Protein:    input.ExternalFood.Protein,
			Carbs:      input.ExternalFood.Carbs,
			Fat:        input.ExternalFood.Fat,
			ExternalID: input.ExternalFood.ExternalID,
		}
	}

	entry, err := ctl.logs.Create(currentUserID(c), svcInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (ctl *FoodLogController) List(c *gin.Context) {
	date := time.Now()
	if q := c.Query("log_date"); q != "" {
		parsed, err := parseDate(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "log_date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	skip, limit := parsePagination(c)
	logs, err := ctl.logs.List(currentUserID(c), date, skip, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (ctl *FoodLogController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.logs.Delete(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
