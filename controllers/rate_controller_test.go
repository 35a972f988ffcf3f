package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orion-pms/models"
	"orion-pms/services"

	"github.com/gin-gonic/gin"
)

type stubCalendar struct{}

func (stubCalendar) Lookup(unitType string, date time.Time) (*models.RateDay, error) {
	return nil, nil
}

type stubUnits struct{}

func (stubUnits) DefaultBaseRate(unitType string) (float64, error) {
	if unitType != "Standard" {
		return 0, services.ErrUnknownUnitType
	}
	return 250.00, nil
}

func newRateTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := services.NewRateEngine(stubCalendar{}, stubUnits{})
	rc := NewRateController(nil, engine)

	r := gin.New()
	r.GET("/api/rates/recommended", rc.RecommendedRate)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecommendedRateEndpoint(t *testing.T) {
	r := newRateTestRouter()

	checkIn := time.Now().AddDate(0, 0, 60).Format("2006-01-02")
	w := doRequest(t, r, http.MethodGet, "/api/rates/recommended?unit_type=Standard&check_in="+checkIn+"&nights=2&occupancy=0.95")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			RecommendedRate float64 `json:"recommendedRate"`
			Nights          int     `json:"nights"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success envelope")
	}
	if body.Data.Nights != 2 {
		t.Fatalf("expected nights 2, got %d", body.Data.Nights)
	}
	if body.Data.RecommendedRate <= 0 {
		t.Fatalf("expected positive recommended rate, got %v", body.Data.RecommendedRate)
	}
}

func TestRecommendedRateEndpointValidation(t *testing.T) {
	r := newRateTestRouter()

	cases := []struct {
		name   string
		target string
		code   int
	}{
		{"missing unit_type", "/api/rates/recommended?check_in=2025-06-01", http.StatusBadRequest},
		{"missing check_in", "/api/rates/recommended?unit_type=Standard", http.StatusBadRequest},
		{"malformed check_in", "/api/rates/recommended?unit_type=Standard&check_in=06-01-2025", http.StatusBadRequest},
		{"non-numeric nights", "/api/rates/recommended?unit_type=Standard&check_in=2025-06-01&nights=two", http.StatusBadRequest},
		{"zero nights", "/api/rates/recommended?unit_type=Standard&check_in=2025-06-01&nights=0", http.StatusBadRequest},
		{"unknown unit type", "/api/rates/recommended?unit_type=Penthouse&check_in=2025-06-01", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := doRequest(t, r, http.MethodGet, tc.target)
		if w.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.code, w.Code, w.Body.String())
		}
	}
}
