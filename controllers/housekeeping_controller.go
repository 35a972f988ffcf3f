package controllers

import (
	"net/http"
	"time"

	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	Service *services.HousekeepingService
}

func NewHousekeepingController(service *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{Service: service}
}

// GetPendingTasks (GET /api/housekeeping)
func (hc *HousekeepingController) GetPendingTasks(c *gin.Context) {
	tasks, err := hc.Service.GetPending()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tasks)
}

// CompleteTask (POST /api/housekeeping/:id/complete)
func (hc *HousekeepingController) CompleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body struct {
		ActualTime int `json:"actualTime"`
	}
	_ = c.ShouldBindJSON(&body)

	task, err := hc.Service.Complete(id, body.ActualTime, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}
