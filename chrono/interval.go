// Package chrono provides the calendar and interval arithmetic used by the
// pixml decoder: resolving a document timestep (unit string plus multiplier)
// into a calendar interval, and parsing date/time pairs into timestamps with
// time-zone shifting and optional collapse of 24-hour steps to calendar days.
package chrono

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hydrokit/pixml/errs"
)

// Unit identifies the base unit of a calendar interval.
type Unit uint8

const (
	UnitHour Unit = 0x1 // UnitHour represents an interval counted in hours.
	UnitDay  Unit = 0x2 // UnitDay represents an interval of whole calendar days.
)

func (u Unit) String() string {
	switch u {
	case UnitHour:
		return "Hour"
	case UnitDay:
		return "Day"
	default:
		return "Unknown"
	}
}

// Interval is a calendar interval: a multiplier applied to a base unit.
//
// The zero value is not a valid interval; construct one through StepInterval
// or the Daily helper.
type Interval struct {
	Unit       Unit
	Multiplier int
}

// Daily returns the one-day interval.
func Daily() Interval {
	return Interval{Unit: UnitDay, Multiplier: 1}
}

// IsValid reports whether the interval has a known unit and a positive
// multiplier.
func (iv Interval) IsValid() bool {
	return (iv.Unit == UnitHour || iv.Unit == UnitDay) && iv.Multiplier > 0
}

// IsDaily reports whether the interval is exactly one calendar day.
func (iv Interval) IsDaily() bool {
	return iv.Unit == UnitDay && iv.Multiplier == 1
}

// Step returns the interval's fixed duration. Day intervals report 24 hours
// per day; callers doing calendar-exact day arithmetic should use date math
// instead of this duration.
func (iv Interval) Step() time.Duration {
	switch iv.Unit {
	case UnitHour:
		return time.Duration(iv.Multiplier) * time.Hour
	case UnitDay:
		return time.Duration(iv.Multiplier) * 24 * time.Hour
	default:
		return 0
	}
}

// String renders the interval in the decoder's interval vocabulary:
// "1 Hour", "6 Hour", "Day".
func (iv Interval) String() string {
	if iv.IsDaily() {
		return "Day"
	}

	return strconv.Itoa(iv.Multiplier) + " " + iv.Unit.String()
}

const secondsPerHour = 3600

// StepInterval resolves a document timestep into a calendar interval.
//
// The interchange format expresses timesteps as a unit string plus an integer
// multiplier; the only unit observed in the format is "second". The multiplier
// must be a positive exact multiple of one hour: 3600 resolves to "1 Hour",
// 21600 to "6 Hour", 86400 to "24 Hour". Sub-hour timesteps are not supported
// and resolve to an error wrapping errs.ErrUnsupportedInterval; they are never
// rounded.
//
// Parameters:
//   - unit: The timestep unit string from the document (must be "second")
//   - multiplier: The timestep multiplier in that unit
//
// Returns:
//   - Interval: The resolved hour-based interval
//   - error: Wraps errs.ErrUnsupportedInterval for unknown units or
//     multipliers not an exact positive multiple of 3600 seconds
func StepInterval(unit string, multiplier int) (Interval, error) {
	if unit != "second" {
		return Interval{}, fmt.Errorf("%w: unit %q", errs.ErrUnsupportedInterval, unit)
	}
	if multiplier <= 0 || multiplier%secondsPerHour != 0 {
		return Interval{}, fmt.Errorf("%w: %d seconds is not a whole number of hours", errs.ErrUnsupportedInterval, multiplier)
	}

	return Interval{Unit: UnitHour, Multiplier: multiplier / secondsPerHour}, nil
}
