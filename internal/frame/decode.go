// Package frame decodes the solar-thermal controller's tab-delimited
// status response into a typed Status. Field order on the wire is the
// whole contract: every token is bound to its schema tag by position
// and converted with the tag's fixed scale divisor. Decoding is
// all-or-nothing — the first missing or malformed field aborts the
// decode and no partial Status escapes.
package frame

import (
	"solartherm/internal/models"
	"solartherm/internal/units"
)

// Decode tokenizes one raw response line and converts it into a Status.
// It is a pure function of the frame bytes and the schema and is safe
// for concurrent use. Tokens beyond the schema are ignored; a frame
// shorter than the last slot Decode reads yields a MissingFieldError
// naming that slot.
func Decode(raw []byte) (models.Status, error) {
	f, err := Split(raw)
	if err != nil {
		return models.Status{}, err
	}

	var st models.Status

	if st.Firmware, err = f.text(TagFirmware); err != nil {
		return models.Status{}, err
	}
	if st.OperatingDay, err = f.uint(TagBetriebstag); err != nil {
		return models.Status{}, err
	}
	if st.StatusCode, err = f.uint(TagStatus); err != nil {
		return models.Status{}, err
	}
	if st.DCDisconnect, err = f.boolean(TagDCTrenner); err != nil {
		return models.Status{}, err
	}
	if st.DCRelay, err = f.boolean(TagDCRelais); err != nil {
		return models.Status{}, err
	}
	if st.ACRelay, err = f.boolean(TagACRelais); err != nil {
		return models.Status{}, err
	}

	if st.WaterTemp, err = temperature(f, TagWassertemp, scaleTenths); err != nil {
		return models.Status{}, err
	}
	if st.WaterTempMin, err = temperature(f, TagWassertempMin, scaleTenths); err != nil {
		return models.Status{}, err
	}
	if st.WaterTempMax, err = temperature(f, TagWassertempMax, scaleTenths); err != nil {
		return models.Status{}, err
	}
	if st.SolarTargetTemp, err = temperature(f, TagSolltempSolar, scaleTenths); err != nil {
		return models.Status{}, err
	}
	if st.GridTargetTemp, err = temperature(f, TagSolltempNetz, scaleTenths); err != nil {
		return models.Status{}, err
	}

	if st.InsulationReading, err = f.uint(TagIsoMessung); err != nil {
		return models.Status{}, err
	}
	// Device temperature is the one temperature reported in whole degrees.
	if st.DeviceTemp, err = temperature(f, TagGeraetetemp, 1); err != nil {
		return models.Status{}, err
	}

	v, err := f.float(TagSolarspannung)
	if err != nil {
		return models.Status{}, err
	}
	st.SolarVoltage = units.Voltage(v)

	a, err := f.float(TagSolarstrom)
	if err != nil {
		return models.Status{}, err
	}
	st.SolarCurrent = units.Current(a)

	w, err := f.float(TagSolarleistung)
	if err != nil {
		return models.Status{}, err
	}
	st.SolarPower = units.Power(w)

	if st.SolarEnergyToday, err = energy(f, TagSolarenergieHeute); err != nil {
		return models.Status{}, err
	}
	if st.SolarEnergyTotal, err = energy(f, TagSolarenergieGesamt); err != nil {
		return models.Status{}, err
	}
	if st.GridEnergyToday, err = energy(f, TagNetzenergieHeute); err != nil {
		return models.Status{}, err
	}

	if st.SerialNumber, err = f.text(TagSeriennummer); err != nil {
		return models.Status{}, err
	}

	return st, nil
}

func temperature(f Fields, tag Tag, divisor float64) (units.Temperature, error) {
	v, err := f.scaled(tag, divisor)
	if err != nil {
		return 0, err
	}
	return units.Temperature(v), nil
}

func energy(f Fields, tag Tag) (units.Energy, error) {
	v, err := f.scaled(tag, scaleMilli)
	if err != nil {
		return 0, err
	}
	return units.Energy(v), nil
}
