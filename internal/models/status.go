package models

import (
	"time"

	"solartherm/internal/units"
)

// Status is one fully decoded controller frame. It is built once per
// poll and never mutated afterwards; reserved wire slots are not
// represented here at all.
type Status struct {
	ReadingID string    `json:"reading_id"`
	PolledAt  time.Time `json:"polled_at"`

	// Water circuit
	WaterTemp       units.Temperature `json:"water_temp_c"`
	WaterTempMin    units.Temperature `json:"water_temp_min_c"`
	WaterTempMax    units.Temperature `json:"water_temp_max_c"`
	SolarTargetTemp units.Temperature `json:"solar_target_temp_c"`
	GridTargetTemp  units.Temperature `json:"grid_target_temp_c"`

	// Solar input, momentary
	SolarVoltage units.Voltage `json:"solar_voltage_v"`
	SolarCurrent units.Current `json:"solar_current_a"`
	SolarPower   units.Power   `json:"solar_power_w"`

	// Energy counters
	SolarEnergyToday units.Energy `json:"solar_energy_today_wh"`
	SolarEnergyTotal units.Energy `json:"solar_energy_total_wh"`
	GridEnergyToday  units.Energy `json:"grid_energy_today_wh"`

	// Device condition
	InsulationReading uint32            `json:"insulation_reading"`
	DeviceTemp        units.Temperature `json:"device_temp_c"`
	StatusCode        uint32            `json:"status_code"`
	DCDisconnect      bool              `json:"dc_disconnect"`
	DCRelay           bool              `json:"dc_relay"`
	ACRelay           bool              `json:"ac_relay"`

	// Identity
	OperatingDay uint32 `json:"operating_day"`
	Firmware     string `json:"firmware"`
	SerialNumber string `json:"serial_number"`
}
