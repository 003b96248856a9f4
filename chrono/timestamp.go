package chrono

import (
	"fmt"
	"time"

	"github.com/hydrokit/pixml/errs"
)

// Precision identifies the calendar precision carried by a Timestamp.
type Precision uint8

const (
	PrecisionSecond Precision = 0x1 // PrecisionSecond represents second-of-day precision.
	PrecisionDay    Precision = 0x2 // PrecisionDay represents whole-calendar-day precision.
)

func (p Precision) String() string {
	switch p {
	case PrecisionSecond:
		return "Second"
	case PrecisionDay:
		return "Day"
	default:
		return "Unknown"
	}
}

// Timestamp is a point on the calendar at a declared precision.
//
// Day-precision timestamps hold midnight of their calendar day; the Precision
// field distinguishes "midnight" from "this whole day" so that collapsed
// series keep their identity distinct from hourly ones.
type Timestamp struct {
	Time      time.Time
	Precision Precision
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero()
}

// Equal reports whether two timestamps name the same instant at the same
// precision.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Precision == other.Precision && t.Time.Equal(other.Time)
}

// Before reports whether t is earlier than other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.Time.Before(other.Time)
}

// String renders the timestamp at its precision.
func (t Timestamp) String() string {
	if t.Precision == PrecisionDay {
		return t.Time.Format("2006-01-02")
	}

	return t.Time.Format("2006-01-02 15:04:05")
}

// Layouts used by the interchange format's date and time attributes.
const (
	dateLayout       = "2006-01-02"
	clockLayout      = "15:04:05"
	clockShortLayout = "15:04"
)

// Zone returns a fixed time zone for the given label and hour offset. When
// the label is empty a GMT-relative one is derived ("GMT", "GMT+2", "GMT-5").
func Zone(label string, offsetHours int) *time.Location {
	if label == "" {
		switch {
		case offsetHours == 0:
			label = "GMT"
		case offsetHours > 0:
			label = fmt.Sprintf("GMT+%d", offsetHours)
		default:
			label = fmt.Sprintf("GMT%d", offsetHours)
		}
	}

	return time.FixedZone(label, offsetHours*3600)
}

// ParseDateTime parses a calendar date plus a time-of-day into a Timestamp,
// applying the zone shift and, when requested, the 24-hour-to-day collapse.
//
// The shift is applied as real calendar arithmetic: an event at 23:00 shifted
// by +2 hours lands at 01:00 on the next calendar day, not at a wrapped
// hour-of-day.
//
// When collapseToDay is set the timestamp is demoted to day precision after
// shifting. A shifted hour-of-day less than or equal to cutoffHour rolls the
// date back one calendar day first: by convention a 24-hour reading ending at
// midnight belongs to the day it measured, not the day it was stamped.
// cutoffHour generalizes the midnight convention for callers whose documents
// stamp end-of-day readings at a different hour; pass 0 for the standard rule.
//
// Parameters:
//   - date: Calendar date in "2006-01-02" form
//   - clock: Time of day in "15:04:05" form (seconds may be omitted)
//   - shiftHours: Signed zone shift added to the parsed time
//   - zone: Output time zone the timestamp is expressed in
//   - collapseToDay: Demote the result to day precision
//   - cutoffHour: Hour at or below which a collapsed timestamp rolls back a day
//
// Returns:
//   - Timestamp: The shifted (and possibly collapsed) timestamp
//   - error: Wraps errs.ErrInvalidDateTime when either field fails to parse
func ParseDateTime(date, clock string, shiftHours int, zone *time.Location, collapseToDay bool, cutoffHour int) (Timestamp, error) {
	if zone == nil {
		zone = time.UTC
	}

	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: date %q", errs.ErrInvalidDateTime, date)
	}

	layout := clockLayout
	if len(clock) == len(clockShortLayout) {
		layout = clockShortLayout
	}
	c, err := time.Parse(layout, clock)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: time %q", errs.ErrInvalidDateTime, clock)
	}

	t := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, zone)
	t = t.Add(time.Duration(shiftHours) * time.Hour)

	if !collapseToDay {
		return Timestamp{Time: t, Precision: PrecisionSecond}, nil
	}

	if t.Hour() <= cutoffHour {
		t = t.AddDate(0, 0, -1)
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, zone)

	return Timestamp{Time: t, Precision: PrecisionDay}, nil
}
