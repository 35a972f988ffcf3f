package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"orion-pms/constants"
	"orion-pms/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mustParseDate(value string) time.Time {
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		log.Fatalf("Error parsing seed date (%s): %v", value, err)
	}
	return t
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "orion_pms")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func amenities(items ...string) datatypes.JSON {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%q", it))
	}
	return datatypes.JSON("[" + strings.Join(parts, ",") + "]")
}

// SeedDatabase provisions the demo property when the catalog is empty.
func SeedDatabase() {
	var unitCount int64
	DB.Model(&models.Unit{}).Count(&unitCount)
	if unitCount == 0 {
		m := func(s string) *time.Time { t := mustParseDate(s); return &t }
		units := []models.Unit{
			{Code: "101", Name: "Standard City View", Type: constants.UnitTypeStandard, Floor: 1, Capacity: 2, MaxCapacity: 2, BaseRate: 250.00, Status: constants.UnitStatusAvailable,
				Amenities: amenities("WiFi", "TV", "Air conditioning", "Minibar"), ViewType: "city", CleaningTime: 30, LastMaintenance: m("2024-01-15"), NextMaintenance: m("2024-07-15")},
			{Code: "102", Name: "Standard Garden View", Type: constants.UnitTypeStandard, Floor: 1, Capacity: 2, MaxCapacity: 2, BaseRate: 280.00, Status: constants.UnitStatusAvailable,
				Amenities: amenities("WiFi", "TV", "Air conditioning", "Minibar", "Balcony"), ViewType: "garden", CleaningTime: 30, LastMaintenance: m("2024-01-20"), NextMaintenance: m("2024-07-20")},
			{Code: "201", Name: "Luxo Premium", Type: constants.UnitTypeLuxo, Floor: 2, Capacity: 3, MaxCapacity: 4, BaseRate: 450.00, Status: constants.UnitStatusAvailable,
				Amenities: amenities("WiFi", "LED TV", "Air conditioning", "Minibar", "Balcony", "Hot tub"), ViewType: "ocean", CleaningTime: 45, LastMaintenance: m("2024-02-10"), NextMaintenance: m("2024-08-10")},
			{Code: "202", Name: "Luxo Executivo", Type: constants.UnitTypeLuxo, Floor: 2, Capacity: 2, MaxCapacity: 3, BaseRate: 420.00, Status: constants.UnitStatusMaintenance,
				Amenities: amenities("WiFi", "LED TV", "Air conditioning", "Minibar", "Workspace"), ViewType: "city", CleaningTime: 45, LastMaintenance: m("2024-02-15"), NextMaintenance: m("2024-08-15")},
			{Code: "301", Name: "Suite Master", Type: constants.UnitTypeSuite, Floor: 3, Capacity: 4, MaxCapacity: 6, BaseRate: 750.00, Status: constants.UnitStatusAvailable,
				Amenities: amenities("WiFi", "4K TV", "Air conditioning", "Minibar", "Balcony", "Hot tub", "Kitchen"), ViewType: "ocean", CleaningTime: 60, LastMaintenance: m("2024-03-01"), NextMaintenance: m("2024-09-01")},
		}
		if err := DB.Create(&units).Error; err != nil {
			log.Printf("warning: failed to seed units: %v", err)
		} else {
			log.Println("Units seeded")
		}
	}

	var guestCount int64
	DB.Model(&models.Guest{}).Count(&guestCount)
	if guestCount == 0 {
		doc := func(s string) *string { return &s }
		guests := []models.Guest{
			{FirstName: "Ana", LastName: "Souza", Email: "ana.souza@example.com", Phone: "+55 11 98888-0001",
				DocumentType: "cpf", DocumentNumber: doc("390.533.447-05"), Nationality: "BR", LoyaltyTier: "Gold"},
			{FirstName: "Carlos", LastName: "Pereira", Email: "carlos.pereira@example.com", Phone: "+55 21 97777-0002",
				DocumentType: "cpf", DocumentNumber: doc("987.654.321-00"), Nationality: "BR", LoyaltyTier: "Standard"},
		}
		if err := DB.Create(&guests).Error; err != nil {
			log.Printf("warning: failed to seed guests: %v", err)
		} else {
			log.Println("Guests seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Guest{},
		&models.Unit{},
		&models.RateDay{},
		&models.Reservation{},
		&models.HousekeepingTask{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
