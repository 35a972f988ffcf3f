package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orion-pms/constants"
	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Conflicts are 409 so the caller knows to re-query and retry.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRange):
		utils.JSONError(c, http.StatusBadRequest, "check_in must be strictly before check_out")
	case errors.Is(err, services.ErrUnknownUnitType):
		utils.JSONError(c, http.StatusBadRequest, "unknown unit type")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAvailabilityConflict):
		utils.JSONError(c, http.StatusConflict, "dates no longer available, please re-query")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "reservation status does not allow this operation")
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, name+" is required (YYYY-MM-DD)")
		return time.Time{}, false
	}
	t, err := time.Parse(constants.DateLayout, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" format, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
