package decoder

import (
	"fmt"
	"time"

	"github.com/hydrokit/pixml/internal/options"
)

// DefaultSource is the data source literal used in identifiers when no
// source override is supplied.
const DefaultSource = "PI"

// Options holds the caller-supplied decode settings. Construct through
// functional options; the zero configuration reads values for every series
// and returns individual series in the document's own time zone.
type Options struct {
	// PeriodStart and PeriodEnd clip the output period when set. The native
	// period from the document header is always retained separately on each
	// series.
	PeriodStart time.Time
	PeriodEnd   time.Time

	// ZoneOffsetHours is the requested output zone offset; nil means output
	// in the document's declared zone.
	ZoneOffsetHours *int
	ZoneLabel       string

	// DataSource, DataType and Description override identifier and
	// description fields. They are templates: ${...} tokens are expanded
	// against each series' own properties after its identifier is assigned.
	DataSource  string
	DataType    string
	Description string

	// Collapse24HourToDay converts series with a 24-hour timestep to
	// day-precision timestamps. DayCutoffHour sets the hour at or below
	// which a reading rolls back to the previous calendar day (0 keeps the
	// midnight-belongs-to-yesterday convention).
	Collapse24HourToDay bool
	DayCutoffHour       int

	// ReadValues false is discovery mode: metadata and period only, no
	// value buffer allocation.
	ReadValues bool

	Mode OutputMode

	// EnsembleID and EnsembleName override the resolved ensemble grouping
	// identity. Both are templates like the identifier overrides.
	EnsembleID   string
	EnsembleName string
}

// Option is a functional option configuring a decode call.
type Option = options.Option[*Options]

func newOptions(opts ...Option) (*Options, error) {
	o := &Options{
		ReadValues: true,
		Mode:       OutputSeries,
	}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// WithPeriod clips the output period of every series to [start, end].
func WithPeriod(start, end time.Time) Option {
	return options.New(func(o *Options) error {
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			return fmt.Errorf("invalid clipping period: end %s before start %s", end, start)
		}
		o.PeriodStart = start
		o.PeriodEnd = end

		return nil
	})
}

// WithTimeZone requests output timestamps shifted to the given hour offset.
// The label names the zone in output timestamps; when empty a GMT-relative
// label is derived from the offset.
func WithTimeZone(offsetHours int, label string) Option {
	return options.NoError(func(o *Options) {
		offset := offsetHours
		o.ZoneOffsetHours = &offset
		o.ZoneLabel = label
	})
}

// WithDataSource overrides the identifier's data source part. The value is a
// template expanded against each series' properties.
func WithDataSource(source string) Option {
	return options.NoError(func(o *Options) {
		o.DataSource = source
	})
}

// WithDataType overrides the identifier's data type part (default: the
// series' parameter id). The value is a template.
func WithDataType(dataType string) Option {
	return options.NoError(func(o *Options) {
		o.DataType = dataType
	})
}

// WithDescription overrides each series' description with an expanded
// template (default: the series' station name).
func WithDescription(description string) Option {
	return options.NoError(func(o *Options) {
		o.Description = description
	})
}

// WithDayCollapse enables collapsing 24-hour-step series to day precision.
// Readings at or before cutoffHour belong to the previous calendar day.
func WithDayCollapse(cutoffHour int) Option {
	return options.New(func(o *Options) error {
		if cutoffHour < 0 || cutoffHour > 23 {
			return fmt.Errorf("day cutoff hour %d outside 0-23", cutoffHour)
		}
		o.Collapse24HourToDay = true
		o.DayCutoffHour = cutoffHour

		return nil
	})
}

// WithoutValues enables discovery mode: series carry identifier, period and
// metadata but no allocated value buffer.
func WithoutValues() Option {
	return options.NoError(func(o *Options) {
		o.ReadValues = false
	})
}

// WithOutputMode selects series output, ensemble output, or both.
func WithOutputMode(mode OutputMode) Option {
	return options.New(func(o *Options) error {
		switch mode {
		case OutputSeries, OutputEnsembles, OutputSeriesAndEnsembles:
			o.Mode = mode
			return nil
		default:
			return fmt.Errorf("unknown output mode %d", mode)
		}
	})
}

// WithEnsembleID overrides the resolved ensemble id (template).
func WithEnsembleID(id string) Option {
	return options.NoError(func(o *Options) {
		o.EnsembleID = id
	})
}

// WithEnsembleName overrides the resolved ensemble name (template).
func WithEnsembleName(name string) Option {
	return options.NoError(func(o *Options) {
		o.EnsembleName = name
	})
}
