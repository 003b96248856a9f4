// Package errs defines the sentinel errors shared across pixml packages.
//
// Callers can match these with errors.Is after unwrapping; packages wrap them
// with fmt.Errorf("...: %w", ...) to attach context such as the offending tag
// name or timestep value.
package errs

import "errors"

var (
	// ErrUnexpectedRoot indicates the document's root element is not the
	// expected TimeSeries element.
	ErrUnexpectedRoot = errors.New("unexpected root element")

	// ErrMissingTimeZone indicates the document declares no time zone element.
	ErrMissingTimeZone = errors.New("missing time zone declaration")

	// ErrInvalidTimeZone indicates the document's time zone declaration does
	// not match the required signed single-decimal hour format (e.g. "-5.0").
	ErrInvalidTimeZone = errors.New("invalid time zone declaration")

	// ErrNoSeries indicates the document contains no series elements.
	ErrNoSeries = errors.New("document contains no series")

	// ErrMissingHeader indicates a series element has no header block.
	ErrMissingHeader = errors.New("series has no header")

	// ErrUnsupportedInterval indicates a timestep that cannot be expressed
	// as a whole number of hours. Sub-hour granularity is a documented
	// limitation of the interval vocabulary, never silently rounded.
	ErrUnsupportedInterval = errors.New("unsupported timestep interval")

	// ErrInvalidMissingValue indicates a missing-value marker that is present
	// but neither the NaN token nor a parsable number.
	ErrInvalidMissingValue = errors.New("invalid missing-value marker")

	// ErrInvalidDateTime indicates a date or time field that does not parse.
	ErrInvalidDateTime = errors.New("invalid date/time")

	// ErrUnsupportedContainer indicates a container type with no registered
	// decompressor.
	ErrUnsupportedContainer = errors.New("unsupported container type")

	// ErrEmptyContainer indicates a zip container with no file entries.
	ErrEmptyContainer = errors.New("container holds no entries")

	// ErrNotAllocated indicates a value operation on a series whose value
	// buffer was never allocated (discovery mode).
	ErrNotAllocated = errors.New("series values not allocated")

	// ErrInvalidPeriod indicates a series period whose start is after its end.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrOutsidePeriod indicates a timestamp outside the series' allocated
	// period grid.
	ErrOutsidePeriod = errors.New("timestamp outside series period")

	// ErrOffGrid indicates a timestamp that does not land on the series'
	// interval grid.
	ErrOffGrid = errors.New("timestamp not aligned to series interval")

	// ErrInvalidOutputMode indicates an output mode string naming neither
	// series nor ensemble output.
	ErrInvalidOutputMode = errors.New("invalid output mode")
)
