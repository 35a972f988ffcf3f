package controllers

import (
	"net/http"
	"strings"
	"time"

	"orion-pms/constants"
	"orion-pms/services"
	"orion-pms/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type createReservationBody struct {
	GuestID  uint   `json:"guestId" binding:"required"`
	UnitID   uint   `json:"unitId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	Rate            float64 `json:"rate" binding:"required"`
	Source          string  `json:"source"`
	PaymentMethod   string  `json:"paymentMethod"`
	SpecialRequests string  `json:"specialRequests"`
}

// CreateReservation (POST /api/reservations)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body createReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := time.Parse(constants.DateLayout, body.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkIn format, expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(constants.DateLayout, body.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOut format, expected YYYY-MM-DD")
		return
	}

	reservation, err := rc.Service.Create(services.CreateReservationInput{
		GuestID:         body.GuestID,
		UnitID:          body.UnitID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          body.Adults,
		Children:        body.Children,
		Rate:            body.Rate,
		Source:          body.Source,
		PaymentMethod:   body.PaymentMethod,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// GetReservations (GET /api/reservations)
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservation (GET /api/reservations/:code)
func (rc *ReservationController) GetReservation(c *gin.Context) {
	reservation, err := rc.Service.GetByCode(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// CheckIn (POST /api/reservations/:code/checkin)
func (rc *ReservationController) CheckIn(c *gin.Context) {
	reservation, err := rc.Service.CheckIn(c.Param("code"), time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// CheckOut (POST /api/reservations/:code/checkout)
func (rc *ReservationController) CheckOut(c *gin.Context) {
	reservation, err := rc.Service.CheckOut(c.Param("code"), time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// Cancel (POST /api/reservations/:code/cancel)
func (rc *ReservationController) Cancel(c *gin.Context) {
	reservation, err := rc.Service.Cancel(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// MarkNoShow (POST /api/reservations/:code/no-show)
func (rc *ReservationController) MarkNoShow(c *gin.Context) {
	reservation, err := rc.Service.MarkNoShow(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// UpdatePayment (PATCH /api/reservations/:code/payment)
func (rc *ReservationController) UpdatePayment(c *gin.Context) {
	var body struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "paymentStatus is required")
		return
	}
	reservation, err := rc.Service.UpdatePayment(c.Param("code"), body.PaymentStatus, body.PaymentMethod)
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}
