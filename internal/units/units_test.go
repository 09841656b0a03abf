package units

import (
	"math"
	"testing"
)

func TestPower_Conversions(t *testing.T) {
	t.Parallel()

	p := Power(1500)
	if p.Watts() != 1500 {
		t.Errorf("Watts: want 1500, got %v", p.Watts())
	}
	if p.Kilowatts() != 1.5 {
		t.Errorf("Kilowatts: want 1.5, got %v", p.Kilowatts())
	}
	if got := Power(1.1435).Kilowatts(); math.Abs(got-0.0011435) > 1e-12 {
		t.Errorf("Kilowatts: want 0.0011435, got %v", got)
	}
}

func TestEnergy_Conversions(t *testing.T) {
	t.Parallel()

	e := Energy(2000)
	if e.WattHours() != 2000 {
		t.Errorf("WattHours: want 2000, got %v", e.WattHours())
	}
	if e.KilowattHours() != 2 {
		t.Errorf("KilowattHours: want 2, got %v", e.KilowattHours())
	}
	if got := Energy(91.725).KilowattHours(); math.Abs(got-0.091725) > 1e-12 {
		t.Errorf("KilowattHours: want 0.091725, got %v", got)
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"temperature", Temperature(23.5).String(), "23.5 °C"},
		{"voltage", Voltage(189.5).String(), "189.5 V"},
		{"current", Current(190.03).String(), "190.03 A"},
		{"power_w", Power(1.1435).String(), "1.1435 W"},
		{"power_kw", Power(1143.5).KilowattString(), "1.1435 kW"},
		{"energy_wh", Energy(217.29).String(), "217.29 Wh"},
		{"energy_kwh", Energy(217.29).KilowattHourString(), "0.21729 kWh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("want %q, got %q", tc.want, tc.got)
			}
		})
	}
}
