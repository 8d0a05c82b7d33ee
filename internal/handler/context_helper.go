package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/middleware"
	"github.com/classboard/classboard-api/internal/models"
)

// currentTeacherID extracts the authenticated teacher from the gin context.
func currentTeacherID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return 0, false
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok || claims.TeacherID == 0 {
		return 0, false
	}
	return claims.TeacherID, true
}
