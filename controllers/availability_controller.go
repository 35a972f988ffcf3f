package controllers

import (
	"net/http"

	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Service *services.AvailabilityService
}

func NewAvailabilityController(service *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Service: service}
}

// CheckUnitAvailability (GET /api/units/:id/availability?check_in=&check_out=)
func (ac *AvailabilityController) CheckUnitAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	checkIn, ok := parseDateParam(c, "check_in")
	if !ok {
		return
	}
	checkOut, ok := parseDateParam(c, "check_out")
	if !ok {
		return
	}

	available, err := ac.Service.IsAvailable(id, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"unitId":    id,
		"checkIn":   c.Query("check_in"),
		"checkOut":  c.Query("check_out"),
		"available": available,
	})
}

// ListAvailableUnits (GET /api/units/available?type=&check_in=&check_out=)
func (ac *AvailabilityController) ListAvailableUnits(c *gin.Context) {
	checkIn, ok := parseDateParam(c, "check_in")
	if !ok {
		return
	}
	checkOut, ok := parseDateParam(c, "check_out")
	if !ok {
		return
	}

	units, err := ac.Service.ListAvailableUnits(c.Query("type"), checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, units)
}
