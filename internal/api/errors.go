package api

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/internal/middleware"
	"github.com/pageza/recipeprep/backend/internal/service"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{service.ErrRecipeNotFound, http.StatusNotFound},
	{service.ErrMealPlanEntryNotFound, http.StatusNotFound},
	{service.ErrGroceryListNotFound, http.StatusNotFound},
	{service.ErrGroceryItemNotFound, http.StatusNotFound},
	{service.ErrInvalidServings, http.StatusBadRequest},
	{service.ErrInvalidMealType, http.StatusBadRequest},
	{service.ErrInvalidDate, http.StatusBadRequest},
	{service.ErrInvalidDateRange, http.StatusBadRequest},
	{service.ErrNoIngredients, http.StatusBadRequest},
	{service.ErrUnknownCategory, http.StatusBadRequest},
	{service.ErrUserExists, http.StatusConflict},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
}

// respondError maps service errors to HTTP statuses. Anything unknown is
// logged and reported as a 500 without details.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, gin.H{"error": err.Error()})
			return
		}
	}
	logger.Error("request failed",
		zap.Error(err),
		zap.String("request_id", requestid.Get(c)),
		zap.String("path", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// pathUUID parses a uuid path parameter, answering 400 when it is malformed
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated user or answers 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}
