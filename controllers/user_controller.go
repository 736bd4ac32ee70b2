package controllers

import (
	"net/http"
	"time"

	"github.com/dizzyfrogs/chunklog/models"
	"github.com/dizzyfrogs/chunklog/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewUserController(auth *services.AuthService, users *services.UserService) *UserController {
	return &UserController{auth: auth, users: users}
}

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID            uint     `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	DateOfBirth   *string  `json:"date_of_birth"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	ActivityLevel string   `json:"activity_level"`
}

func toUserResponse(user *models.User) userResponse {
	resp := userResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Gender:        user.Gender,
		HeightCm:      user.HeightCm,
		ActivityLevel: user.ActivityLevel,
	}
	if user.DateOfBirth != nil {
		dob := user.DateOfBirth.Format(time.DateOnly)
		resp.DateOfBirth = &dob
	}
	return resp
}

func (ctl *UserController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.auth.Register(input.Username, input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (ctl *UserController) Me(c *gin.Context) {
	user, err := ctl.users.Get(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type profileInput struct {
	DateOfBirth   *string  `json:"date_of_birth"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female"`
	HeightCm      *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	ActivityLevel *string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
}

func (ctl *UserController) UpdateMe(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := services.ProfileUpdate{
		Gender:        input.Gender,
		HeightCm:      input.HeightCm,
		ActivityLevel: input.ActivityLevel,
	}
	if input.DateOfBirth != nil {
		dob, err := parseDate(*input.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
			return
		}
		update.DateOfBirth = &dob
	}

	user, err := ctl.users.UpdateProfile(currentUserID(c), update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (ctl *UserController) DeleteMe(c *gin.Context) {
	if err := ctl.users.Delete(currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
