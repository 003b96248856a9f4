package decoder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hydrokit/pixml/chrono"
	"github.com/hydrokit/pixml/document"
	"github.com/hydrokit/pixml/errs"
	"github.com/hydrokit/pixml/timeseries"
)

// seriesContext carries the per-series settings resolved during header
// decoding that event decoding must reuse unchanged: the zone shift, the
// day-collapse state and the raw missing-value marker text. Threading it
// explicitly keeps a series from being collapsed for its header but not for
// its events; no state is shared between series.
type seriesContext struct {
	shiftHours  int
	zone        *time.Location
	collapse    bool
	cutoffHour  int
	missingText string
}

// Header element tags and attributes of the interchange format.
const (
	tagType           = "type"
	tagLocationID     = "locationId"
	tagParameterID    = "parameterId"
	tagQualifierID    = "qualifierId"
	tagEnsembleID     = "ensembleId"
	tagEnsembleMember = "ensembleMemberIndex"
	tagTimeStep       = "timeStep"
	tagStartDate      = "startDate"
	tagEndDate        = "endDate"
	tagForecastDate   = "forecastDate"
	tagMissVal        = "missVal"
	tagStationName    = "stationName"
	tagLat            = "lat"
	tagLon            = "lon"
	tagZ              = "z"
	tagUnits          = "units"

	attrUnit       = "unit"
	attrMultiplier = "multiplier"
	attrDate       = "date"
	attrTime       = "time"
)

// nanToken is the missing-value marker text meaning the NaN sentinel,
// matched case-insensitively before any numeric parse.
const nanToken = "NaN"

// decodeHeader converts one series' header block into a populated,
// value-unallocated TimeSeries plus the context event decoding must reuse.
//
// The returned error is non-fatal at document level: the orchestrator
// records it as a Problem and continues with the next series.
func decodeHeader(header *document.Element, opts *Options, shiftHours int, zone *time.Location) (*timeseries.TimeSeries, seriesContext, error) {
	ctx := seriesContext{
		shiftHours: shiftHours,
		zone:       zone,
		cutoffHour: opts.DayCutoffHour,
	}

	// Timestep resolution decides the interval and whether this series
	// collapses to day precision, before any timestamp is parsed.
	step := header.Child(tagTimeStep)
	if step == nil {
		return nil, ctx, fmt.Errorf("%w: no %s element", errs.ErrUnsupportedInterval, tagTimeStep)
	}
	multiplier, err := strconv.Atoi(step.Attr(attrMultiplier))
	if err != nil {
		return nil, ctx, fmt.Errorf("%w: multiplier %q", errs.ErrUnsupportedInterval, step.Attr(attrMultiplier))
	}
	interval, err := chrono.StepInterval(step.Attr(attrUnit), multiplier)
	if err != nil {
		return nil, ctx, err
	}
	if opts.Collapse24HourToDay && interval.Unit == chrono.UnitHour && interval.Multiplier == 24 {
		interval = chrono.Daily()
		ctx.collapse = true
	}

	ts := timeseries.New(interval)

	nativeStart, err := parseDateTimeChild(header, tagStartDate, ctx)
	if err != nil {
		return nil, ctx, err
	}
	nativeEnd, err := parseDateTimeChild(header, tagEndDate, ctx)
	if err != nil {
		return nil, ctx, err
	}
	ts.NativeStart = nativeStart
	ts.NativeEnd = nativeEnd

	// String-valued header fields are attached verbatim, absent ones as the
	// empty string; nothing is coerced to a magic number.
	location := header.ChildText(tagLocationID)
	parameter := header.ChildText(tagParameterID)
	member := header.ChildText(tagEnsembleMember)
	fileEnsembleID := header.ChildText(tagEnsembleID)
	stationName := header.ChildText(tagStationName)

	ts.SetProperty(timeseries.PropType, timeseries.StringProperty(header.ChildText(tagType)))
	ts.SetProperty(timeseries.PropLocationID, timeseries.StringProperty(location))
	ts.SetProperty(timeseries.PropParameterID, timeseries.StringProperty(parameter))
	ts.SetProperty(timeseries.PropQualifierID, timeseries.StringProperty(header.ChildText(tagQualifierID)))
	ts.SetProperty(timeseries.PropStationName, timeseries.StringProperty(stationName))
	if fileEnsembleID != "" {
		ts.SetProperty(timeseries.PropEnsembleID, timeseries.StringProperty(fileEnsembleID))
	}
	if member != "" {
		ts.SetProperty(timeseries.PropEnsembleMemberIndex, timeseries.StringProperty(member))
	}
	setCoordinate(ts, header, tagLat, timeseries.PropLat)
	setCoordinate(ts, header, tagLon, timeseries.PropLon)
	setCoordinate(ts, header, tagZ, timeseries.PropZ)

	if forecast := header.Child(tagForecastDate); forecast != nil {
		forecastDate, err := parseDateTimeChild(header, tagForecastDate, ctx)
		if err != nil {
			return nil, ctx, err
		}
		ts.SetProperty(timeseries.PropForecastDate, timeseries.TimeProperty(forecastDate))
	}

	ts.Units = header.ChildText(tagUnits)
	ts.SetProperty(timeseries.PropUnits, timeseries.StringProperty(ts.Units))

	// Identifier parts are assigned before any template expansion runs, so
	// overrides may reference ${identifier}.
	ts.Location = location
	ts.Source = DefaultSource
	ts.Type = parameter
	ts.Member = member
	if opts.DataSource != "" {
		ts.Source = expandTemplate(opts.DataSource, ts)
	}
	if opts.DataType != "" {
		ts.Type = expandTemplate(opts.DataType, ts)
	}

	// Ensemble affiliation is resolved here and stored as properties so the
	// orchestrator groups without re-deriving.
	if member != "" {
		groupID := fmt.Sprintf("%s_%s_%s", ts.Location, ts.Type, fileEnsembleID)
		if opts.EnsembleID != "" {
			groupID = expandTemplate(opts.EnsembleID, ts)
		}
		groupName := groupID
		if opts.EnsembleName != "" {
			groupName = expandTemplate(opts.EnsembleName, ts)
		}
		ts.SetProperty(timeseries.PropEnsembleGroupID, timeseries.StringProperty(groupID))
		ts.SetProperty(timeseries.PropEnsembleGroupName, timeseries.StringProperty(groupName))
	}

	// Requested clipping bounds become the current period; the native bounds
	// stay on the series untouched.
	ts.PeriodStart = nativeStart
	ts.PeriodEnd = nativeEnd
	if !opts.PeriodStart.IsZero() {
		ts.PeriodStart = clipBound(opts.PeriodStart, ctx)
	}
	if !opts.PeriodEnd.IsZero() {
		ts.PeriodEnd = clipBound(opts.PeriodEnd, ctx)
	}

	missing, missingText, err := resolveMissingValue(header.ChildText(tagMissVal))
	if err != nil {
		return nil, ctx, err
	}
	ts.MissingValue = missing
	ctx.missingText = missingText
	if missingText != "" {
		ts.SetProperty(timeseries.PropMissVal, timeseries.StringProperty(missingText))
	}

	ts.Description = stationName
	if opts.Description != "" {
		ts.Description = expandTemplate(opts.Description, ts)
	}

	return ts, ctx, nil
}

// parseDateTimeChild parses a child element's date and time attributes using
// the series context's shift and collapse settings.
func parseDateTimeChild(header *document.Element, tag string, ctx seriesContext) (chrono.Timestamp, error) {
	child := header.Child(tag)
	if child == nil {
		return chrono.Timestamp{}, fmt.Errorf("%w: no %s element", errs.ErrInvalidDateTime, tag)
	}

	parsed, err := chrono.ParseDateTime(child.Attr(attrDate), child.Attr(attrTime), ctx.shiftHours, ctx.zone, ctx.collapse, ctx.cutoffHour)
	if err != nil {
		return chrono.Timestamp{}, fmt.Errorf("%s: %w", tag, err)
	}

	return parsed, nil
}

// setCoordinate attaches a geographic coordinate as a number property, or as
// the raw string when the text does not parse. Absent coordinates are
// omitted.
func setCoordinate(ts *timeseries.TimeSeries, header *document.Element, tag, key string) {
	text := header.ChildText(tag)
	if text == "" {
		return
	}

	if v, err := strconv.ParseFloat(text, 64); err == nil {
		ts.SetProperty(key, timeseries.NumberProperty(v))
	} else {
		ts.SetProperty(key, timeseries.StringProperty(text))
	}
}

// clipBound wraps a caller-supplied clipping instant at the series' output
// precision: day-collapsed series truncate the bound to its calendar day.
func clipBound(t time.Time, ctx seriesContext) chrono.Timestamp {
	if !ctx.collapse {
		return chrono.Timestamp{Time: t.In(ctx.zone), Precision: chrono.PrecisionSecond}
	}

	local := t.In(ctx.zone)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ctx.zone)

	return chrono.Timestamp{Time: day, Precision: chrono.PrecisionDay}
}

// resolveMissingValue resolves the header's missing-value marker. An absent
// marker and the NaN token both resolve to the NaN sentinel; any other text
// must parse as a number. A present but unparsable marker is a hard error
// for the series.
func resolveMissingValue(text string) (float64, string, error) {
	if text == "" {
		return math.NaN(), "", nil
	}
	if strings.EqualFold(text, nanToken) {
		return math.NaN(), text, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, text, fmt.Errorf("%w: %q", errs.ErrInvalidMissingValue, text)
	}

	return v, text, nil
}
