// Package pixml decodes PI-style XML time-series interchange documents into
// an in-memory time-series data model.
//
// An interchange document declares a base time zone and one or more series,
// each with a header block (identity, timestep, period, missing-value
// marker, free-form metadata) and an ordered list of timestamped event
// records. The decoder reconciles the document's time zone and timestep
// vocabulary with the caller's requested output representation, builds
// series identifiers and properties from the header metadata, converts event
// records into values on a regular grid, and optionally groups related
// series into ensembles.
//
// # Core Features
//
//   - Transparent unwrapping of compressed sources (zip, gzip, zstd, lz4)
//     selected by the source name's extension
//   - Time-zone shifting with real calendar carry at day boundaries
//   - Optional collapse of 24-hour-step series to calendar-day precision
//   - Ensemble grouping of forecast traces sharing an ensemble key
//   - Per-series and per-record fault isolation: malformed units are
//     skipped and reported in a problem list, never aborting the decode
//   - Discovery mode: metadata-only decoding without value allocation
//
// # Basic Usage
//
//	result, err := pixml.DecodeFile("forecast.xml.gz",
//	    decoder.WithTimeZone(1, "CET"),
//	)
//	if err != nil {
//	    return err // source not found, or invalid options
//	}
//	for _, ts := range result.Series {
//	    fmt.Println(ts.Identifier(), ts.Units, ts.Len())
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the decoder
// package, simplifying the most common use cases. For fine-grained control,
// use the decoder, timeseries, chrono, document and container packages
// directly.
package pixml

import (
	"io"
	"os"

	"github.com/hydrokit/pixml/decoder"
)

// DecodeFile reads and decodes the named document file. The file's extension
// selects the container unwrapping.
//
// Returns:
//   - decoder.Result: Decoded series, ensembles and problems
//   - error: Source-access failure (file not readable) or invalid options;
//     content failures are reported through the Result's problem list
func DecodeFile(path string, opts ...decoder.Option) (decoder.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return decoder.Result{}, err
	}

	return decoder.DecodeBytes(data, path, opts...)
}

// Decode drains the reader and decodes its document. The source name selects
// the container unwrapping by extension.
func Decode(r io.Reader, name string, opts ...decoder.Option) (decoder.Result, error) {
	return decoder.Decode(r, name, opts...)
}

// DecodeBytes decodes an in-memory document. The source name selects the
// container unwrapping by extension.
func DecodeBytes(data []byte, name string, opts ...decoder.Option) (decoder.Result, error) {
	return decoder.DecodeBytes(data, name, opts...)
}
