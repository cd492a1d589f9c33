package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/middleware"
)

// parseIDParam reads a positive int64 path parameter. Anything else cannot
// name an existing row, so it is answered with notFound.
func parseIDParam(ctx *gin.Context, name string, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, notFound)
		return 0, false
	}
	return id, true
}
