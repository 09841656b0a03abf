// Package units models the physical quantities the controller reports
// as small value types with a fixed canonical unit each, so that scale
// factors live in exactly one place and display code never re-derives
// units. Formatted renderings use fixed precision and are deterministic.
package units

import "fmt"

// Temperature is a physical temperature in degrees Celsius.
type Temperature float64

// Celsius returns the temperature in °C.
func (t Temperature) Celsius() float64 { return float64(t) }

func (t Temperature) String() string { return fmt.Sprintf("%.1f °C", float64(t)) }

// Voltage is an electrical potential in volts.
type Voltage float64

// Volts returns the voltage in V.
func (v Voltage) Volts() float64 { return float64(v) }

func (v Voltage) String() string { return fmt.Sprintf("%.1f V", float64(v)) }

// Current is an electrical current in amperes.
type Current float64

// Amperes returns the current in A.
func (c Current) Amperes() float64 { return float64(c) }

func (c Current) String() string { return fmt.Sprintf("%.2f A", float64(c)) }

// Power is an electrical power with watt as the canonical unit.
type Power float64

// Watts returns the power in W.
func (p Power) Watts() float64 { return float64(p) }

// Kilowatts returns the power in kW.
func (p Power) Kilowatts() float64 { return float64(p) / 1000 }

func (p Power) String() string { return fmt.Sprintf("%.4f W", float64(p)) }

// KilowattString renders the power in kW with fixed precision.
func (p Power) KilowattString() string { return fmt.Sprintf("%.4f kW", p.Kilowatts()) }

// Energy is an amount of energy with watt-hour as the canonical unit.
type Energy float64

// WattHours returns the energy in Wh.
func (e Energy) WattHours() float64 { return float64(e) }

// KilowattHours returns the energy in kWh.
func (e Energy) KilowattHours() float64 { return float64(e) / 1000 }

func (e Energy) String() string { return fmt.Sprintf("%.2f Wh", float64(e)) }

// KilowattHourString renders the energy in kWh with fixed precision.
func (e Energy) KilowattHourString() string { return fmt.Sprintf("%.5f kWh", e.KilowattHours()) }
