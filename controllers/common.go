package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dizzyfrogs/chunklog/services"

	"github.com/gin-gonic/gin"
)

const defaultPageLimit = 100

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func parsePagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > defaultPageLimit {
		limit = defaultPageLimit
	}
	return skip, limit
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// respondServiceError maps service sentinels to HTTP statuses. Anything
// unmapped is an internal error whose detail stays out of the response.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrIncompleteProfile),
		errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
