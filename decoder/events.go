package decoder

import (
	"strconv"

	"github.com/hydrokit/pixml/chrono"
	"github.com/hydrokit/pixml/document"
	"github.com/hydrokit/pixml/timeseries"
)

// Event element vocabulary of the interchange format.
const (
	tagEvent  = "event"
	attrValue = "value"
	attrFlag  = "flag"
)

// decodeEvents applies a series' ordered event records to its allocated
// value grid.
//
// Each record is handled independently: a record whose date, time or value
// fails to parse, or whose timestamp falls off the allocated grid, is
// skipped with a Problem and decoding continues with the next record.
// Interchange files from external agencies routinely contain occasional
// malformed records, so fault isolation is per record, not per series.
//
// The raw value text is compared against the missing-value marker text
// before any numeric parse so that non-numeric markers match exactly.
func decodeEvents(series *document.Element, ts *timeseries.TimeSeries, ctx seriesContext, ordinal int, result *Result) {
	for i, event := range series.ChildElements(tagEvent) {
		at, err := chrono.ParseDateTime(event.Attr(attrDate), event.Attr(attrTime), ctx.shiftHours, ctx.zone, ctx.collapse, ctx.cutoffHour)
		if err != nil {
			result.AddProblem("series %d event %d: %v", ordinal, i+1, err)
			continue
		}

		text := event.Attr(attrValue)
		var value float64
		if ctx.missingText != "" && text == ctx.missingText {
			value = ts.MissingValue
		} else {
			value, err = strconv.ParseFloat(text, 64)
			if err != nil {
				result.AddProblem("series %d event %d: invalid value %q", ordinal, i+1, text)
				continue
			}
		}

		if err := ts.SetAt(at, value, event.Attr(attrFlag)); err != nil {
			result.AddProblem("series %d event %d: %v", ordinal, i+1, err)
		}
	}
}
