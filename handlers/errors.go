package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paintbook/services/booking"
	"paintbook/utils"
)

// respondServiceError maps a service error code onto an HTTP status. Unknown
// errors are logged and masked as 500.
func respondServiceError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeInvalidInput, booking.CodeInvalidRange, booking.CodePastSchedule:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case booking.CodeConflict, booking.CodeInvalidTransition:
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
