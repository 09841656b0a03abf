package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solartherm/internal/models"
	"solartherm/internal/service"
	"solartherm/internal/units"
)

func testStatus() models.Status {
	return models.Status{
		ReadingID:         "r-1",
		WaterTemp:         units.Temperature(23.5),
		WaterTempMin:      units.Temperature(17.5),
		WaterTempMax:      units.Temperature(24.5),
		SolarTargetTemp:   units.Temperature(75.9),
		GridTargetTemp:    units.Temperature(65),
		SolarVoltage:      units.Voltage(189.5),
		SolarCurrent:      units.Current(190.03),
		SolarPower:        units.Power(1.1435),
		SolarEnergyToday:  units.Energy(0.21729),
		SolarEnergyTotal:  units.Energy(0.778),
		GridEnergyToday:   units.Energy(91.725),
		InsulationReading: 25,
		DeviceTemp:        units.Temperature(90),
		StatusCode:        12,
		DCDisconnect:      true,
		DCRelay:           true,
		ACRelay:           true,
		OperatingDay:      35,
		Firmware:          "V1.31",
		SerialNumber:      "12010023021000023",
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{Status: &mockStatus{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetStatus_OK(t *testing.T) {
	mock := &mockStatus{status: testStatus()}
	r := newTestRouter(&service.Service{Status: mock})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if mock.calls != 1 {
		t.Errorf("polls: want 1, got %d", mock.calls)
	}

	var got models.Status
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if got.Firmware != "V1.31" || got.WaterTemp != units.Temperature(23.5) {
		t.Fatalf("unexpected status: %+v", got)
	}
	if got.SerialNumber != "12010023021000023" {
		t.Errorf("SerialNumber: got %q", got.SerialNumber)
	}
}

func TestGetStatus_PollFails(t *testing.T) {
	mock := &mockStatus{err: errors.New(`frame: field solarleistung: cannot parse "V1.31"`)}
	r := newTestRouter(&service.Service{Status: mock})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	// The decode error message is surfaced verbatim.
	if !strings.Contains(w.Body.String(), "solarleistung") {
		t.Errorf("error body should carry the decode message, got %s", w.Body.String())
	}
}

func TestReport_HTML(t *testing.T) {
	r := newTestRouter(&service.Service{Status: &mockStatus{status: testStatus()}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("report status=%d, body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{
		"23.5 °C",           // water temperature with unit
		"1.1435 W",          // power in watts
		"0.0011 kW",         // same power in kilowatts
		"0.00022 kWh",       // today's solar energy in kWh
		"V1.31",             // firmware
		"12010023021000023", // serial number
	} {
		if !strings.Contains(body, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReport_PollFails(t *testing.T) {
	r := newTestRouter(&service.Service{Status: &mockStatus{err: errors.New("frame: missing field seriennummer")}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("report status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing field seriennummer") {
		t.Errorf("error body should carry the decode message, got %s", w.Body.String())
	}
}
