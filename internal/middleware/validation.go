package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/pkg/logger"
	"github.com/yigit/coursedesk/internal/pkg/validation"
)

// BindJSON decodes and validates the request body into obj. On failure it
// writes a 400 with the failing fields and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	validation.Register()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.FromContext(c.Request.Context()).Debug().Err(err).Msg("Invalid request payload")
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
