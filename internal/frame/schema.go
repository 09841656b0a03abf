package frame

// Tag identifies one positional slot of the controller's status frame.
// The declaration order below IS the wire order: the Nth tab-separated
// token of a response always belongs to the Nth tag, so reordering this
// block changes the protocol. Reserved slots carry values whose meaning
// the device documentation does not disclose; they exist only to keep
// the later slots aligned and are never surfaced in a Status.
type Tag int

const (
	TagEcho Tag = iota // command echo, first token of every response
	TagFirmware
	TagBetriebstag
	TagStatus
	TagDCTrenner
	TagDCRelais
	TagACRelais
	TagWassertemp
	TagWassertempMin
	TagWassertempMax
	TagSolltempSolar
	TagSolltempNetz
	TagIsoMessung
	TagGeraetetemp
	TagSolarspannung
	TagSolarstrom
	TagSolarleistung
	TagSolarenergieHeute
	TagSolarenergieGesamt
	TagNetzenergieHeute
	TagReserved1
	TagReserved2
	TagReserved3
	TagReserved4
	TagReserved5
	TagReserved6
	TagReserved7
	TagReserved8
	TagSeriennummer
	TagReserved9

	tagCount // sentinel, keep last
)

// Scale divisors applied to raw wire integers. Temperatures (except the
// device temperature, which is reported in whole degrees) arrive as
// tenths of a degree; energy counters arrive as watt-hours times 1000.
// Power is reported in watts directly; an earlier firmware's milliwatt
// scaling turned out to be wrong against real device output.
const (
	scaleTenths = 10
	scaleMilli  = 1000
)

var tagNames = [tagCount]string{
	TagEcho:               "echo",
	TagFirmware:           "firmware",
	TagBetriebstag:        "betriebstag",
	TagStatus:             "status",
	TagDCTrenner:          "dc_trenner",
	TagDCRelais:           "dc_relais",
	TagACRelais:           "ac_relais",
	TagWassertemp:         "wassertemp",
	TagWassertempMin:      "wassertemp_min",
	TagWassertempMax:      "wassertemp_max",
	TagSolltempSolar:      "solltemp_solar",
	TagSolltempNetz:       "solltemp_netz",
	TagIsoMessung:         "iso_messung",
	TagGeraetetemp:        "geraetetemp",
	TagSolarspannung:      "solarspannung",
	TagSolarstrom:         "solarstrom",
	TagSolarleistung:      "solarleistung",
	TagSolarenergieHeute:  "solarenergie_heute",
	TagSolarenergieGesamt: "solarenergie_gesamt",
	TagNetzenergieHeute:   "netzenergie_heute",
	TagReserved1:          "reserved_1",
	TagReserved2:          "reserved_2",
	TagReserved3:          "reserved_3",
	TagReserved4:          "reserved_4",
	TagReserved5:          "reserved_5",
	TagReserved6:          "reserved_6",
	TagReserved7:          "reserved_7",
	TagReserved8:          "reserved_8",
	TagSeriennummer:       "seriennummer",
	TagReserved9:          "reserved_9",
}

// String returns the wire-schema name of the tag, as used in decode
// error messages.
func (t Tag) String() string {
	if t < 0 || t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// SlotCount reports how many positional slots the schema defines.
func SlotCount() int {
	return int(tagCount)
}
