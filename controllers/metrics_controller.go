package controllers

import (
	"net/http"
	"time"

	"orion-pms/constants"
	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Occupancy *services.OccupancyService
	Cache     *services.MetricsCache
}

func NewMetricsController(occupancy *services.OccupancyService, cache *services.MetricsCache) *MetricsController {
	return &MetricsController{Occupancy: occupancy, Cache: cache}
}

// Dashboard (GET /api/metrics/dashboard?start=&end=) serves the KPI snapshot,
// cached for a couple of minutes. Defaults to the next seven days.
func (mc *MetricsController) Dashboard(c *gin.Context) {
	today := time.Now()
	start := today
	end := today.AddDate(0, 0, 7)

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid start format, expected YYYY-MM-DD")
			return
		}
		start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end format, expected YYYY-MM-DD")
			return
		}
		end = t
	}

	period, err := services.NewPeriod(start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	if snap, err := mc.Cache.Get(ctx, period); err == nil && snap != nil {
		utils.JSONSuccess(c, http.StatusOK, snap)
		return
	}

	snap, err := mc.Occupancy.Snapshot(period, today)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	_ = mc.Cache.Set(ctx, period, snap)

	utils.JSONSuccess(c, http.StatusOK, snap)
}
