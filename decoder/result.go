package decoder

import (
	"fmt"

	"github.com/hydrokit/pixml/internal/hash"
	"github.com/hydrokit/pixml/timeseries"
)

// Result carries everything one decode call produced: the decoded series,
// the ensemble groupings, and the ordered list of non-fatal problems.
// Success and partial failure travel through the same structure; callers
// inspect Problems rather than relying on error types.
type Result struct {
	Series    []*timeseries.TimeSeries
	Ensembles []*timeseries.Ensemble
	Problems  []string

	index map[uint64]*timeseries.TimeSeries
}

// Find returns the decoded series with the given identifier, or nil when no
// such series exists. Lookup is O(1) through an xxHash64 index.
func (r *Result) Find(identifier string) *timeseries.TimeSeries {
	return r.index[hash.ID(identifier)]
}

// AddProblem appends a formatted problem description.
func (r *Result) AddProblem(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

func (r *Result) addSeries(ts *timeseries.TimeSeries) {
	r.Series = append(r.Series, ts)
	if r.index == nil {
		r.index = make(map[uint64]*timeseries.TimeSeries)
	}
	r.index[ts.ID()] = ts
}
