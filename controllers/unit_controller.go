package controllers

import (
	"net/http"
	"strings"

	"orion-pms/models"
	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

type UnitController struct {
	Service *services.UnitService
}

func NewUnitController(service *services.UnitService) *UnitController {
	return &UnitController{Service: service}
}

// GetUnits (GET /api/units)
func (uc *UnitController) GetUnits(c *gin.Context) {
	units, err := uc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, units)
}

// CreateUnit (POST /api/units)
func (uc *UnitController) CreateUnit(c *gin.Context) {
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := uc.Service.Create(&unit); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			utils.JSONError(c, http.StatusConflict, "unit code already exists")
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, unit)
}

// UpdateUnit (PATCH /api/units/:id)
func (uc *UnitController) UpdateUnit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := uc.Service.Update(id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": id})
}

// UpdateUnitStatus (PATCH /api/units/:id/status)
func (uc *UnitController) UpdateUnitStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := uc.Service.UpdateStatus(id, body.Status); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": body.Status})
}

// RetireUnit (DELETE /api/units/:id) soft-retires; history keeps pointing at
// the unit.
func (uc *UnitController) RetireUnit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := uc.Service.Retire(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"retired": id})
}
