// Package costing holds the pure cost arithmetic shared by the
// per-event drill-down and the cost-center roll-up report.  Every
// function here is deterministic and free of I/O.  Malformed or
// missing numeric inputs degrade to a zero contribution instead of
// returning an error: a bad rate should blunt a report, not abort it.
package costing

import (
	"strconv"
	"strings"
)

// DefaultShiftHours is the assumed shift length when an assignment has
// no usable call/end time pair.  It is a deliberate estimate for
// budgeting purposes, not a timesheet value.
const DefaultShiftHours = 8.0

// EffectiveRate resolves the rate actually used for costing: the
// per-assignment override when present, else the resource's default
// rate, else zero.  This fallback chain must be applied here and only
// here so every cost path agrees on it.
func EffectiveRate(override, fallback *float64) float64 {
	if override != nil {
		return *override
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}

// ParseClock converts an "HH:MM" or "HH:MM:SS" clock string into
// fractional hours since midnight.  Seconds are ignored.  It returns
// false for empty or unparseable input.
func ParseClock(s string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// ShiftHours returns the elapsed hours between a call and end clock
// time.  A negative span means the shift crossed midnight, so 24 hours
// are added.  When either time is missing or unparseable the default
// shift length is assumed.
func ShiftHours(callTime, endTime *string) float64 {
	if callTime == nil || endTime == nil {
		return DefaultShiftHours
	}
	start, ok := ParseClock(*callTime)
	if !ok {
		return DefaultShiftHours
	}
	end, ok := ParseClock(*endTime)
	if !ok {
		return DefaultShiftHours
	}
	hours := end - start
	if hours < 0 {
		hours += 24
	}
	return hours
}

// CrewCost computes the cost of a single crew assignment from its rate
// override, the member's default rate and the recorded call/end times.
func CrewCost(override, defaultRate *float64, callTime, endTime *string) float64 {
	return EffectiveRate(override, defaultRate) * ShiftHours(callTime, endTime)
}

// FlatCrewCost is the coarser formula used by the cost-center roll-up:
// a flat default shift per crew assignment regardless of recorded
// times.  It intentionally diverges from CrewCost; the two estimates
// serve different reports.
func FlatCrewCost(override, defaultRate *float64) float64 {
	return EffectiveRate(override, defaultRate) * DefaultShiftHours
}

// EquipmentCost computes the cost of an equipment assignment: the
// effective daily rate times the quantity.  A missing or non-positive
// quantity counts as one unit.
func EquipmentCost(override, dailyRate *float64, quantity *int) float64 {
	qty := 1
	if quantity != nil && *quantity > 0 {
		qty = *quantity
	}
	return EffectiveRate(override, dailyRate) * float64(qty)
}
