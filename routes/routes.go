package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"orion-pms/controllers"
	"orion-pms/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the API surface.
func SetupRouter(
	uc *controllers.UnitController,
	ac *controllers.AvailabilityController,
	rc *controllers.RateController,
	resc *controllers.ReservationController,
	mc *controllers.MetricsController,
	hc *controllers.HousekeepingController,
	gc *controllers.GuestController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		units := api.Group("/units")
		{
			units.GET("", uc.GetUnits)
			units.POST("", uc.CreateUnit)

			// static route must come before /:id
			units.GET("/available", ac.ListAvailableUnits)

			units.GET("/:id/availability", ac.CheckUnitAvailability)
			units.PATCH("/:id", uc.UpdateUnit)
			units.PATCH("/:id/status", uc.UpdateUnitStatus)
			units.DELETE("/:id", uc.RetireUnit)
		}

		rates := api.Group("/rates")
		{
			rates.GET("", rc.GetRate)
			rates.PUT("", rc.UpsertRate)
			rates.POST("/generate", rc.GenerateCalendar)
			rates.GET("/sellable", rc.CheckSellable)
			rates.GET("/recommended", rc.RecommendedRate)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/:code", resc.GetReservation)
			reservations.POST("/:code/checkin", resc.CheckIn)
			reservations.POST("/:code/checkout", resc.CheckOut)
			reservations.POST("/:code/cancel", resc.Cancel)
			reservations.POST("/:code/no-show", resc.MarkNoShow)
			reservations.PATCH("/:code/payment", resc.UpdatePayment)
		}

		metrics := api.Group("/metrics")
		{
			metrics.GET("/dashboard", mc.Dashboard)
		}

		housekeeping := api.Group("/housekeeping")
		{
			housekeeping.GET("", hc.GetPendingTasks)
			housekeeping.POST("/:id/complete", hc.CompleteTask)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
		}
	}

	return r
}
