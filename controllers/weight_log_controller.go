package controllers

import (
	"net/http"
	"time"

	"github.com/dizzyfrogs/chunklog/services"

	"github.com/gin-gonic/gin"
)

type WeightLogController struct {
	logs  *services.WeightLogService
	users *services.UserService
}

func NewWeightLogController(logs *services.WeightLogService, users *services.UserService) *WeightLogController {
	return &WeightLogController{logs: logs, users: users}
}

type weightLogInput struct {
	LogDate *string `json:"log_date"`
	Weight  float64 `json:"weight" binding:"required,gt=0"`
}

func (ctl *WeightLogController) Create(c *gin.Context) {
	var input weightLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date time.Time
	if input.LogDate != nil {
		parsed, err := parseDate(*input.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "log_date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	user, err := ctl.users.Get(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	entry, err := ctl.logs.Create(user, date, input.Weight)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (ctl *WeightLogController) List(c *gin.Context) {
	skip, limit := parsePagination(c)
	logs, err := ctl.logs.List(currentUserID(c), skip, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (ctl *WeightLogController) Delete(c *gin.Context) {
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
