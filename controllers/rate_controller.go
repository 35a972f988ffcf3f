package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"orion-pms/constants"
	"orion-pms/models"
	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

type RateController struct {
	Calendar *services.RateCalendarService
	Engine   *services.RateEngine
}

func NewRateController(calendar *services.RateCalendarService, engine *services.RateEngine) *RateController {
	return &RateController{Calendar: calendar, Engine: engine}
}

// GetRate (GET /api/rates?unit_type=&date=)
func (rc *RateController) GetRate(c *gin.Context) {
	unitType := c.Query("unit_type")
	if unitType == "" {
		utils.JSONError(c, http.StatusBadRequest, "unit_type is required")
		return
	}
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	rd, err := rc.Calendar.Lookup(unitType, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if rd == nil {
		utils.JSONError(c, http.StatusNotFound, "no rate for that unit type and date")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rd)
}

type upsertRateInput struct {
	UnitType     string  `json:"unitType" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Rate         float64 `json:"rate" binding:"required"`
	MinStay      int     `json:"minStay"`
	MaxStay      int     `json:"maxStay"`
	StopSell     bool    `json:"stopSell"`
	CutoffDays   int     `json:"cutoffDays"`
	Availability int     `json:"availability"`
}

// UpsertRate (PUT /api/rates) overwrites in place on an existing
// (unit_type, date) key.
func (rc *RateController) UpsertRate(c *gin.Context) {
	var in upsertRateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	date, err := time.Parse(constants.DateLayout, in.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	if in.MaxStay == 0 {
		in.MaxStay = constants.DefaultMaxStay
	}

	rd := models.RateDay{
		UnitType:     in.UnitType,
		Date:         date,
		Rate:         in.Rate,
		MinStay:      in.MinStay,
		MaxStay:      in.MaxStay,
		StopSell:     in.StopSell,
		CutoffDays:   in.CutoffDays,
		Availability: in.Availability,
	}
	if err := rc.Calendar.Upsert(rd); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rd)
}

type generateCalendarInput struct {
	UnitTypes         []string `json:"unitTypes" binding:"required"`
	StartDate         string   `json:"startDate" binding:"required"`
	NumDays           int      `json:"numDays" binding:"required"`
	WeekendMultiplier float64  `json:"weekendMultiplier"`
	HolidayDates      []string `json:"holidayDates"`
	HolidayMultiplier float64  `json:"holidayMultiplier"`
}

// GenerateCalendar (POST /api/rates/generate) bootstraps a pricing horizon;
// rerunning with the same arguments is idempotent per key.
func (rc *RateController) GenerateCalendar(c *gin.Context) {
	var in generateCalendarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	start, err := time.Parse(constants.DateLayout, in.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startDate format, expected YYYY-MM-DD")
		return
	}

	holidays := make(map[string]bool, len(in.HolidayDates))
	for _, h := range in.HolidayDates {
		if _, err := time.Parse(constants.DateLayout, h); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid holiday date "+h)
			return
		}
		holidays[h] = true
	}

	count, err := rc.Calendar.GenerateCalendar(in.UnitTypes, start, in.NumDays, in.WeekendMultiplier, holidays, in.HolidayMultiplier)
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rateDays": count})
}

// CheckSellable (GET /api/rates/sellable?unit_type=&date=&booked_at=)
func (rc *RateController) CheckSellable(c *gin.Context) {
	unitType := c.Query("unit_type")
	if unitType == "" {
		utils.JSONError(c, http.StatusBadRequest, "unit_type is required")
		return
	}
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}
	bookedAt := time.Now()
	if raw := c.Query("booked_at"); raw != "" {
		t, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid booked_at format, expected YYYY-MM-DD")
			return
		}
		bookedAt = t
	}

	sellable, err := rc.Calendar.IsSellable(unitType, date, bookedAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"unitType": unitType, "date": c.Query("date"), "sellable": sellable})
}

// RecommendedRate (GET /api/rates/recommended?unit_type=&check_in=&nights=&occupancy=)
// is the pricing simulator: a read-only oracle, no booking checks.
func (rc *RateController) RecommendedRate(c *gin.Context) {
	unitType := c.Query("unit_type")
	if unitType == "" {
		utils.JSONError(c, http.StatusBadRequest, "unit_type is required")
		return
	}
	checkIn, ok := parseDateParam(c, "check_in")
	if !ok {
		return
	}
	nights, err := strconv.Atoi(c.DefaultQuery("nights", "1"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid nights")
		return
	}
	occupancy, err := strconv.ParseFloat(c.DefaultQuery("occupancy", "0"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid occupancy")
		return
	}

	rate, err := rc.Engine.RecommendedRate(unitType, checkIn, nights, occupancy, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"unitType":        unitType,
		"checkIn":         c.Query("check_in"),
		"nights":          nights,
		"occupancy":       occupancy,
		"recommendedRate": rate,
	})
}
