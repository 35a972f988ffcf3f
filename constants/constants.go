package constants

// Unit status
const (
	UnitStatusAvailable    = "available"
	UnitStatusOccupied     = "occupied"
	UnitStatusMaintenance  = "maintenance"
	UnitStatusOutOfService = "out_of_service"
)

// Reservation status
const (
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked-in"
	ReservationStatusCheckedOut = "checked-out"
	ReservationStatusCancelled  = "cancelled"
	ReservationStatusNoShow     = "no-show"
)

// Payment status
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Housekeeping task status
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Unit types
const (
	UnitTypeStandard = "Standard"
	UnitTypeLuxo     = "Luxo"
	UnitTypeSuite    = "Suite"
)

// DefaultBaseRates is the fallback nightly rate per unit type, used when no
// unit of the type exists in the catalog yet.
var DefaultBaseRates = map[string]float64{
	UnitTypeStandard: 250.00,
	UnitTypeLuxo:     450.00,
	UnitTypeSuite:    750.00,
}

// Weekend multipliers. The calendar generator and the rate engine apply
// different uplifts; these are intentionally separate business constants.
const (
	CalendarWeekendMultiplier = 1.3
	EngineWeekendMultiplier   = 1.25
)

// Calendar generation defaults
const (
	DefaultHolidayMultiplier = 1.5
	DefaultMinStay           = 1
	DefaultMaxStay           = 30
	DefaultCutoffDays        = 14
	DefaultAvailability      = 5
	RateHorizonDays          = 90
)

// LoyaltyPointsPerNight is accrued on checkout for each completed night.
const LoyaltyPointsPerNight = 10

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"
