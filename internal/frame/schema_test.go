package frame

import "testing"

func TestSchema_WireOrder(t *testing.T) {
	t.Parallel()

	// The tag values ARE the wire positions. Locking the full ordering
	// here means a careless reorder of the const block fails loudly
	// instead of silently shifting every downstream field.
	wireOrder := []Tag{
		TagEcho,
		TagFirmware,
		TagBetriebstag,
		TagStatus,
		TagDCTrenner,
		TagDCRelais,
		TagACRelais,
		TagWassertemp,
		TagWassertempMin,
		TagWassertempMax,
		TagSolltempSolar,
		TagSolltempNetz,
		TagIsoMessung,
		TagGeraetetemp,
		TagSolarspannung,
		TagSolarstrom,
		TagSolarleistung,
		TagSolarenergieHeute,
		TagSolarenergieGesamt,
		TagNetzenergieHeute,
		TagReserved1,
		TagReserved2,
		TagReserved3,
		TagReserved4,
		TagReserved5,
		TagReserved6,
		TagReserved7,
		TagReserved8,
		TagSeriennummer,
		TagReserved9,
	}

	if len(wireOrder) != SlotCount() {
		t.Fatalf("schema slot count: want %d, got %d", len(wireOrder), SlotCount())
	}
	for pos, tag := range wireOrder {
		if int(tag) != pos {
			t.Errorf("tag %s: want wire position %d, got %d", tag, pos, int(tag))
		}
	}
}

func TestTag_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  Tag
		want string
	}{
		{TagFirmware, "firmware"},
		{TagWassertemp, "wassertemp"},
		{TagSolarleistung, "solarleistung"},
		{TagSeriennummer, "seriennummer"},
		{TagReserved9, "reserved_9"},
		{Tag(-1), "unknown"},
		{tagCount, "unknown"},
	}
	for _, tc := range cases {
		if got := tc.tag.String(); got != tc.want {
			t.Errorf("Tag(%d).String(): want %q, got %q", int(tc.tag), tc.want, got)
		}
	}

	for tag := Tag(0); tag < tagCount; tag++ {
		if tag.String() == "" {
			t.Errorf("tag %d has no name", int(tag))
		}
	}
}
