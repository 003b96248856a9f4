package timeseries

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hydrokit/pixml/chrono"
	"github.com/hydrokit/pixml/errs"
	"github.com/hydrokit/pixml/internal/hash"
)

// Value is one decoded (timestamp, value, flag) triple.
type Value struct {
	Timestamp chrono.Timestamp
	Value     float64
	Flag      string
}

// TimeSeries is one decoded series: identity, period bounds, metadata
// properties, and an optionally allocated regular value grid.
//
// The calendar interval is fixed at construction and immutable afterward; the
// value grid spans PeriodStart..PeriodEnd at that interval. In discovery mode
// the grid is never allocated and only identity and metadata are populated.
type TimeSeries struct {
	// Identity parts composing the identifier.
	Location string
	Source   string
	Type     string
	Member   string

	// Current period, possibly clipped to the caller's requested window.
	PeriodStart chrono.Timestamp
	PeriodEnd   chrono.Timestamp

	// Native period exactly as read from the document header.
	NativeStart chrono.Timestamp
	NativeEnd   chrono.Timestamp

	Units        string
	Description  string
	MissingValue float64

	interval   chrono.Interval
	properties map[string]Property

	values []float64
	flags  []string
}

// New creates an empty TimeSeries with the given immutable calendar interval.
// The missing-value sentinel defaults to NaN until the header decoder
// resolves the document's marker.
func New(interval chrono.Interval) *TimeSeries {
	return &TimeSeries{
		MissingValue: math.NaN(),
		interval:     interval,
		properties:   make(map[string]Property),
	}
}

// Interval returns the series' calendar interval.
func (ts *TimeSeries) Interval() chrono.Interval {
	return ts.interval
}

// Identifier composes the series identifier as
// location.source.type.interval, with a bracketed member suffix appended for
// ensemble traces: "RIVA.PI.QIN.6 Hour[3]".
func (ts *TimeSeries) Identifier() string {
	id := ts.Location + "." + ts.Source + "." + ts.Type + "." + ts.interval.String()
	if ts.Member != "" {
		id += "[" + ts.Member + "]"
	}

	return id
}

// ID returns the xxHash64 of the identifier, used for indexed lookup.
func (ts *TimeSeries) ID() uint64 {
	return hash.ID(ts.Identifier())
}

// SetProperty stores a metadata property under the given key, replacing any
// previous value.
func (ts *TimeSeries) SetProperty(key string, value Property) {
	ts.properties[key] = value
}

// Property returns the property stored under key and whether it exists.
func (ts *TimeSeries) Property(key string) (Property, bool) {
	p, ok := ts.properties[key]
	return p, ok
}

// PropertyKeys returns all property keys in sorted order.
func (ts *TimeSeries) PropertyKeys() []string {
	keys := make([]string, 0, len(ts.properties))
	for key := range ts.properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Allocated reports whether the value grid has been allocated.
func (ts *TimeSeries) Allocated() bool {
	return ts.values != nil
}

// Len returns the number of grid positions, zero when unallocated.
func (ts *TimeSeries) Len() int {
	return len(ts.values)
}

// Allocate builds the value grid spanning PeriodStart..PeriodEnd inclusive at
// the series interval, with every position initialized to the missing-value
// sentinel.
//
// Returns:
//   - error: Wraps errs.ErrInvalidPeriod when either bound is unset or start
//     is after end, or errs.ErrUnsupportedInterval when the interval is not
//     valid
func (ts *TimeSeries) Allocate() error {
	if ts.PeriodStart.IsZero() || ts.PeriodEnd.IsZero() || ts.PeriodEnd.Before(ts.PeriodStart) {
		return fmt.Errorf("%w: start %s, end %s", errs.ErrInvalidPeriod, ts.PeriodStart, ts.PeriodEnd)
	}
	if !ts.interval.IsValid() {
		return fmt.Errorf("%w: %v", errs.ErrUnsupportedInterval, ts.interval)
	}

	steps, err := ts.index(ts.PeriodEnd)
	if err != nil {
		return err
	}

	ts.values = make([]float64, steps+1)
	ts.flags = make([]string, steps+1)
	for i := range ts.values {
		ts.values[i] = ts.MissingValue
	}

	return nil
}

// index maps a timestamp to its grid position relative to PeriodStart.
func (ts *TimeSeries) index(at chrono.Timestamp) (int, error) {
	offset := at.Time.Sub(ts.PeriodStart.Time)
	if offset < 0 {
		return 0, fmt.Errorf("%w: %s before %s", errs.ErrOutsidePeriod, at, ts.PeriodStart)
	}

	step := ts.interval.Step()
	if offset%step != 0 {
		return 0, fmt.Errorf("%w: %s", errs.ErrOffGrid, at)
	}

	return int(offset / step), nil
}

// SetAt stores a value and its flag at the grid position for the given
// timestamp.
//
// Returns:
//   - error: errs.ErrNotAllocated when called in discovery mode;
//     errs.ErrOutsidePeriod or errs.ErrOffGrid (wrapped) when the timestamp
//     does not address a grid position
func (ts *TimeSeries) SetAt(at chrono.Timestamp, value float64, flag string) error {
	if ts.values == nil {
		return errs.ErrNotAllocated
	}

	i, err := ts.index(at)
	if err != nil {
		return err
	}
	if i >= len(ts.values) {
		return fmt.Errorf("%w: %s after %s", errs.ErrOutsidePeriod, at, ts.PeriodEnd)
	}

	ts.values[i] = value
	ts.flags[i] = flag

	return nil
}

// At returns the value stored at the grid position for the given timestamp.
func (ts *TimeSeries) At(at chrono.Timestamp) (float64, error) {
	if ts.values == nil {
		return 0, errs.ErrNotAllocated
	}

	i, err := ts.index(at)
	if err != nil {
		return 0, err
	}
	if i >= len(ts.values) {
		return 0, fmt.Errorf("%w: %s after %s", errs.ErrOutsidePeriod, at, ts.PeriodEnd)
	}

	return ts.values[i], nil
}

// IsMissing reports whether the given value equals the series' missing-value
// sentinel, treating NaN sentinels correctly.
func (ts *TimeSeries) IsMissing(value float64) bool {
	if math.IsNaN(ts.MissingValue) {
		return math.IsNaN(value)
	}

	return value == ts.MissingValue
}

// Values returns every grid position as a (timestamp, value, flag) triple in
// temporal order. The slice is freshly built per call.
func (ts *TimeSeries) Values() []Value {
	if ts.values == nil {
		return nil
	}

	step := ts.interval.Step()
	out := make([]Value, len(ts.values))
	for i := range ts.values {
		out[i] = Value{
			Timestamp: chrono.Timestamp{
				Time:      ts.PeriodStart.Time.Add(time.Duration(i) * step),
				Precision: ts.PeriodStart.Precision,
			},
			Value: ts.values[i],
			Flag:  ts.flags[i],
		}
	}

	return out
}
