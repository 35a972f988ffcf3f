package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orion-pms/controllers"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(
		&controllers.UnitController{},
		&controllers.AvailabilityController{},
		&controllers.RateController{},
		&controllers.ReservationController{},
		&controllers.MetricsController{},
		&controllers.HousekeepingController{},
		&controllers.GuestController{},
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

// Parameter validation rejects bad input before any service is touched, so
// zero-value controllers are enough here.
func TestParamValidation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name   string
		method string
		target string
	}{
		{"availability missing dates", http.MethodGet, "/api/units/5/availability"},
		{"availability malformed date", http.MethodGet, "/api/units/5/availability?check_in=notadate&check_out=2025-06-05"},
		{"availability bad id", http.MethodGet, "/api/units/abc/availability?check_in=2025-06-01&check_out=2025-06-05"},
		{"available listing missing dates", http.MethodGet, "/api/units/available"},
		{"rate lookup missing unit_type", http.MethodGet, "/api/rates?date=2025-06-01"},
		{"dashboard malformed start", http.MethodGet, "/api/metrics/dashboard?start=garbage"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}
}
