// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auracash/backend/internal/integration/entrypoint/dto"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// parseDate parses a calendar date from its wire format.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseIDParam parses a numeric id from a URL path parameter. On failure it
// writes a 400 response and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}
