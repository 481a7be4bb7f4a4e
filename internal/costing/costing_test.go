package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func iptr(v int) *int         { return &v }

func TestEffectiveRate(t *testing.T) {
	assert.Equal(t, 10.0, EffectiveRate(fptr(10), fptr(20)), "override wins over default")
	assert.Equal(t, 20.0, EffectiveRate(nil, fptr(20)))
	assert.Equal(t, 0.0, EffectiveRate(nil, nil))
	assert.Equal(t, 0.0, EffectiveRate(fptr(0), fptr(20)), "explicit zero override is honored")
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in    string
		hours float64
		ok    bool
	}{
		{"08:00", 8, true},
		{"08:30", 8.5, true},
		{"22:00:00", 22, true},
		{"0:15", 0.25, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseClock(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.InDelta(t, tc.hours, got, 1e-9, "input %q", tc.in)
		}
	}
}

func TestShiftHours(t *testing.T) {
	assert.InDelta(t, 8.0, ShiftHours(sptr("09:00"), sptr("17:00")), 1e-9)
	assert.InDelta(t, 4.0, ShiftHours(sptr("22:00"), sptr("02:00")), 1e-9, "midnight crossing adds 24h")
	assert.InDelta(t, DefaultShiftHours, ShiftHours(nil, nil), 1e-9)
	assert.InDelta(t, DefaultShiftHours, ShiftHours(sptr("09:00"), nil), 1e-9)
	assert.InDelta(t, DefaultShiftHours, ShiftHours(sptr("garbage"), sptr("17:00")), 1e-9, "unparseable falls back to default")
	assert.InDelta(t, 0.0, ShiftHours(sptr("09:00"), sptr("09:00")), 1e-9)
}

func TestCrewCost(t *testing.T) {
	// Midnight-crossing case: 22:00 to 02:00 at 50/h is 4 hours.
	assert.InDelta(t, 200.0, CrewCost(nil, fptr(50), sptr("22:00"), sptr("02:00")), 1e-9)
	// Default-hours case: no times recorded means 8 hours.
	assert.InDelta(t, 400.0, CrewCost(nil, fptr(50), nil, nil), 1e-9)
	// Override takes precedence over the member default.
	assert.InDelta(t, 80.0, CrewCost(fptr(10), fptr(20), nil, nil), 1e-9)
	// Missing rates contribute nothing rather than failing.
	assert.InDelta(t, 0.0, CrewCost(nil, nil, sptr("09:00"), sptr("17:00")), 1e-9)
}

func TestFlatCrewCost(t *testing.T) {
	assert.InDelta(t, 400.0, FlatCrewCost(nil, fptr(50)), 1e-9)
	assert.InDelta(t, 80.0, FlatCrewCost(fptr(10), fptr(20)), 1e-9)
	assert.InDelta(t, 0.0, FlatCrewCost(nil, nil), 1e-9)
}

func TestEquipmentCost(t *testing.T) {
	assert.InDelta(t, 75.0, EquipmentCost(nil, fptr(25), iptr(3)), 1e-9)
	assert.InDelta(t, 25.0, EquipmentCost(nil, fptr(25), nil), 1e-9, "quantity defaults to 1")
	assert.InDelta(t, 25.0, EquipmentCost(nil, fptr(25), iptr(0)), 1e-9, "non-positive quantity counts as 1")
	assert.InDelta(t, 30.0, EquipmentCost(fptr(10), fptr(25), iptr(3)), 1e-9, "override wins")
	assert.InDelta(t, 0.0, EquipmentCost(nil, nil, iptr(3)), 1e-9)
}
