package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/models"
)

// RequireActiveUser rejects tokens whose user has since been deleted. It
// runs after AuthMiddleware.
func RequireActiveUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var count int64
		err := db.WithContext(c.Request.Context()).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify user status"})
			return
		}
		if count == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}

		c.Next()
	}
}
