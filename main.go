package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"orion-pms/config"
	"orion-pms/constants"
	"orion-pms/controllers"
	"orion-pms/jobs"
	"orion-pms/routes"
	"orion-pms/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Redis is optional; the dashboard just loses its cache without it.
	rdb, err := config.ConnectRedis(context.Background())
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v); metrics cache disabled", err)
		rdb = nil
	} else {
		log.Println("✅ Redis connection established.")
	}

	// Initialize services
	unitService := services.NewUnitService(db)
	calendarService := services.NewRateCalendarService(db, unitService)
	rateEngine := services.NewRateEngine(calendarService, unitService)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db)
	occupancyService := services.NewOccupancyService(db)
	guestService := services.NewGuestService(db)
	housekeepingService := services.NewHousekeepingService(db)
	metricsCache := services.NewMetricsCache(rdb)

	// Make sure a pricing horizon exists before taking traffic.
	if n, err := calendarService.EnsureHorizon(time.Now(), constants.RateHorizonDays); err != nil {
		log.Printf("⚠️  Rate horizon bootstrap failed: %v", err)
	} else {
		log.Printf("✅ Rate horizon ensured (%d rows checked)", n)
	}

	// Initialize controllers
	unitController := controllers.NewUnitController(unitService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	rateController := controllers.NewRateController(calendarService, rateEngine)
	reservationController := controllers.NewReservationController(reservationService)
	metricsController := controllers.NewMetricsController(occupancyService, metricsCache)
	housekeepingController := controllers.NewHousekeepingController(housekeepingService)
	guestController := controllers.NewGuestController(guestService)

	// Schedule the nightly horizon roll
	scheduler := cron.New()
	if err := jobs.InitCronJobs(scheduler, calendarService); err != nil {
		log.Fatalf("❌ Cron init failed: %v", err)
	}

	// Build router
	router := routes.SetupRouter(
		unitController,
		availabilityController,
		rateController,
		reservationController,
		metricsController,
		housekeepingController,
		guestController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
