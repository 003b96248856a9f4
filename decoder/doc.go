// Package decoder turns a PI-style XML time-series interchange document into
// the in-memory time-series data model.
//
// One decode call synchronously consumes one document: the container is
// unwrapped by the source name's extension, the tree is materialized and its
// root validated, the document-wide time zone declaration is reconciled with
// the caller's requested output zone, and every series element is decoded
// through the Series Header Decoder and the Event Stream Decoder. Related
// series are grouped into ensembles when ensemble output is requested.
//
// # Fault isolation
//
// Failures come in two tiers. Fatal conditions (unopenable or unparsable
// source, wrong root element, undecodable time zone declaration, no series
// at all) stop the decode with a single explanatory Problem and an otherwise
// empty Result. Everything else is non-fatal and scoped to its unit: a
// series with a missing or malformed header is skipped with a Problem, a
// malformed event record is skipped with a Problem, and decoding continues.
// Both tiers land in the same Result; there is no separate error path for
// partial failure.
//
// # Concurrency
//
// The decoder holds no shared mutable state. Per-series settings (zone
// shift, day-collapse, missing-value marker) travel in an explicit
// per-series context from header decoding into event decoding. Concurrent
// decode calls are safe as long as each call gets its own source and
// options.
//
// # Basic usage
//
//	result, err := decoder.DecodeBytes(data, "forecast.xml",
//	    decoder.WithTimeZone(1, "CET"),
//	    decoder.WithOutputMode(decoder.OutputSeriesAndEnsembles),
//	)
//	if err != nil {
//	    return err // invalid options
//	}
//	for _, p := range result.Problems {
//	    log.Println(p)
//	}
//	for _, ts := range result.Series {
//	    fmt.Println(ts.Identifier(), ts.Len())
//	}
package decoder
