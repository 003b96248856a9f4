package decoder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hydrokit/pixml/chrono"
	"github.com/hydrokit/pixml/container"
	"github.com/hydrokit/pixml/document"
	"github.com/hydrokit/pixml/errs"
	"github.com/hydrokit/pixml/timeseries"
)

// Document-level vocabulary of the interchange format.
const (
	rootTag     = "TimeSeries"
	tagTimeZone = "timeZone"
	tagSeries   = "series"
	tagHeader   = "header"
)

// Decode drains the reader and decodes its document. The source name selects
// the container unwrapping by extension.
//
// A failed read is reported as a fatal Problem in the Result, not as an
// error: the stream was already open, so the failure is content-level (for
// example a caller cancelling by closing the underlying stream mid-read).
// The returned error is non-nil only for invalid options.
func Decode(r io.Reader, name string, opts ...Option) (Result, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return Result{}, err
	}

	result := Result{}
	data, err := io.ReadAll(r)
	if err != nil {
		result.AddProblem("reading source %q: %v", name, err)
		return result, nil
	}

	decodeInto(&result, data, name, o)

	return result, nil
}

// DecodeBytes decodes an in-memory document. The source name selects the
// container unwrapping by extension. The returned error is non-nil only for
// invalid options; every content failure, fatal or not, lands in the
// Result's problem list.
func DecodeBytes(data []byte, name string, opts ...Option) (Result, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return Result{}, err
	}

	result := Result{}
	decodeInto(&result, data, name, o)

	return result, nil
}

// decodeInto runs the document decode: unwrap, parse, validate the root,
// resolve the zone shift, then iterate series with per-series fault
// isolation. Fatal conditions leave a single Problem and an otherwise empty
// result.
func decodeInto(result *Result, data []byte, name string, opts *Options) {
	doc, err := container.Unwrap(name, data)
	if err != nil {
		result.AddProblem("opening source %q: %v", name, err)
		return
	}

	root, err := document.Parse(doc)
	if err != nil {
		result.AddProblem("parsing source %q: %v", name, err)
		return
	}

	if root.Tag() != rootTag {
		result.AddProblem("%v: got <%s>, want <%s>", errs.ErrUnexpectedRoot, root.Tag(), rootTag)
		return
	}

	fileOffset, err := parseFileOffset(root)
	if err != nil {
		result.AddProblem("%v", err)
		return
	}

	// The shift converts document-native timestamps into the requested
	// output zone; without a requested offset the output stays in the
	// document's own zone.
	shift := 0
	outputOffset := fileOffset
	if opts.ZoneOffsetHours != nil {
		shift = *opts.ZoneOffsetHours - fileOffset
		outputOffset = *opts.ZoneOffsetHours
	}
	zone := chrono.Zone(opts.ZoneLabel, outputOffset)

	seriesElements := root.ChildElements(tagSeries)
	if len(seriesElements) == 0 {
		result.AddProblem("%v", errs.ErrNoSeries)
		return
	}

	ensembles := make(map[string]*timeseries.Ensemble)
	for i, el := range seriesElements {
		ordinal := i + 1

		header := el.Child(tagHeader)
		if header == nil {
			result.AddProblem("series %d: %v", ordinal, errs.ErrMissingHeader)
			continue
		}

		ts, ctx, err := decodeHeader(header, opts, shift, zone)
		if err != nil {
			result.AddProblem("series %d: %v", ordinal, err)
			continue
		}

		if opts.ReadValues {
			if err := ts.Allocate(); err != nil {
				result.AddProblem("series %d: %v", ordinal, err)
				continue
			}
			decodeEvents(el, ts, ctx, ordinal, result)
		}

		if opts.Mode.includesSeries() {
			result.addSeries(ts)
		}
		if opts.Mode.includesEnsembles() {
			accumulateEnsemble(result, ensembles, ts)
		}
	}

	for _, ensemble := range result.Ensembles {
		ensemble.CopySharedProperties()
	}
}

// accumulateEnsemble appends a series to its ensemble, creating the group on
// first sight of its resolved id. Series without ensemble properties are not
// grouped.
func accumulateEnsemble(result *Result, ensembles map[string]*timeseries.Ensemble, ts *timeseries.TimeSeries) {
	idProp, ok := ts.Property(timeseries.PropEnsembleGroupID)
	if !ok {
		return
	}

	id := idProp.Str()
	ensemble, ok := ensembles[id]
	if !ok {
		name := id
		if nameProp, ok := ts.Property(timeseries.PropEnsembleGroupName); ok {
			name = nameProp.Str()
		}
		ensemble = timeseries.NewEnsemble(id, name)
		ensembles[id] = ensemble
		result.Ensembles = append(result.Ensembles, ensemble)
	}

	ensemble.AddMember(ts)
}

// parseFileOffset reads the document-wide time zone declaration: a signed
// hour offset in single-decimal form ("1.0", "-5.0"). The fraction must be
// exactly "0"; anything else is fatal, the decoder does not guess.
func parseFileOffset(root *document.Element) (int, error) {
	tz := root.Child(tagTimeZone)
	if tz == nil {
		return 0, errs.ErrMissingTimeZone
	}

	text := tz.TrimmedText()
	whole, fraction, found := strings.Cut(text, ".")
	if !found || fraction != "0" {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidTimeZone, text)
	}

	offset, err := strconv.Atoi(strings.TrimPrefix(whole, "+"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidTimeZone, text)
	}

	return offset, nil
}
