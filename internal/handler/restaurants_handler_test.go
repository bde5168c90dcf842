package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lunchmates/restaurant-picker/internal/entity"
	"github.com/lunchmates/restaurant-picker/internal/filter"
	"github.com/lunchmates/restaurant-picker/internal/takeaway"
)

type stubPicker struct {
	picked      []entity.Restaurant
	pickErr     error
	pickedCfg   filter.Config
	cuisines    []string
	cuisinesErr error
	postalCode  int
}

func (s *stubPicker) Pick(ctx context.Context, cfg filter.Config) ([]entity.Restaurant, error) {
	s.pickedCfg = cfg
	return s.picked, s.pickErr
}

func (s *stubPicker) Cuisines(ctx context.Context, postalCode int) ([]string, error) {
	s.postalCode = postalCode
	return s.cuisines, s.cuisinesErr
}

func testDefaults() filter.Defaults {
	return filter.Defaults{PostalCode: 64293}
}

func TestRestaurantsList(t *testing.T) {
	picker := &stubPicker{picked: []entity.Restaurant{{ID: "r1", Brand: entity.Brand{Name: "Luigi"}}}}
	handler := NewRestaurantsHandler(picker, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/restaurants?count=2&max_duration=45&allow_pickup=yes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if picker.pickedCfg.Count != 2 || picker.pickedCfg.MaxDuration != 45 || !picker.pickedCfg.AllowPickup {
		t.Fatalf("query params not applied: %+v", picker.pickedCfg)
	}
	if picker.pickedCfg.PostalCode != 64293 {
		t.Fatalf("expected default postal code, got %d", picker.pickedCfg.PostalCode)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "success" {
		t.Fatalf("unexpected response: %+v", payload)
	}
	if !strings.Contains(rec.Body.String(), "Luigi") {
		t.Fatalf("expected restaurant in body, got %s", rec.Body.String())
	}
}

func TestRestaurantsList_InvalidFilter(t *testing.T) {
	handler := NewRestaurantsHandler(&stubPicker{}, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/restaurants?max_duration=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.List(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "max_duration") {
		t.Fatalf("expected the offending field in the message, got %s", rec.Body.String())
	}
}

func TestRestaurantsList_UpstreamFailure(t *testing.T) {
	picker := &stubPicker{pickErr: &takeaway.StatusError{Code: http.StatusUnauthorized}}
	handler := NewRestaurantsHandler(picker, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.List(c)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestRestaurantsList_InternalFailure(t *testing.T) {
	picker := &stubPicker{pickErr: errors.New("boom")}
	handler := NewRestaurantsHandler(picker, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.List(c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCuisines(t *testing.T) {
	picker := &stubPicker{cuisines: []string{"Italian", "Pizza"}}
	handler := NewRestaurantsHandler(picker, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cuisines?postal_code=60311", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Cuisines(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if picker.postalCode != 60311 {
		t.Fatalf("expected postal code override, got %d", picker.postalCode)
	}
	if !strings.Contains(rec.Body.String(), "Italian") {
		t.Fatalf("expected cuisines in body, got %s", rec.Body.String())
	}
}

func TestCuisines_DefaultPostalCode(t *testing.T) {
	picker := &stubPicker{}
	handler := NewRestaurantsHandler(picker, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cuisines", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Cuisines(c)
	if picker.postalCode != 64293 {
		t.Fatalf("expected default postal code, got %d", picker.postalCode)
	}
}

func TestCuisines_InvalidPostalCode(t *testing.T) {
	handler := NewRestaurantsHandler(&stubPicker{}, testDefaults())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cuisines?postal_code=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Cuisines(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFiltersList(t *testing.T) {
	handler := NewFiltersHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/filters", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, name := range []string{"max_order_value", "allow_pickup", "cuisines_to_include"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Fatalf("expected field %s in body, got %s", name, rec.Body.String())
		}
	}
}
