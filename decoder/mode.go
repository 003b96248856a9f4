package decoder

import (
	"fmt"
	"strings"

	"github.com/hydrokit/pixml/errs"
)

// OutputMode selects what a decode call returns: individual series, ensemble
// groupings, or both.
type OutputMode uint8

const (
	OutputSeries             OutputMode = 0x1 // OutputSeries returns individual series only.
	OutputEnsembles          OutputMode = 0x2 // OutputEnsembles returns ensemble groupings only.
	OutputSeriesAndEnsembles OutputMode = 0x3 // OutputSeriesAndEnsembles returns both.
)

func (m OutputMode) String() string {
	switch m {
	case OutputSeries:
		return "Series"
	case OutputEnsembles:
		return "Ensembles"
	case OutputSeriesAndEnsembles:
		return "SeriesAndEnsembles"
	default:
		return "Unknown"
	}
}

func (m OutputMode) includesSeries() bool {
	return m == OutputSeries || m == OutputSeriesAndEnsembles
}

func (m OutputMode) includesEnsembles() bool {
	return m == OutputEnsembles || m == OutputSeriesAndEnsembles
}

// ParseOutputMode parses the external free-form output-mode string into the
// closed OutputMode enumeration. The external representation is matched by
// substring: a string naming "ensemble" selects ensemble output, one naming
// "series" selects series output, and one naming both selects both. This
// parse happens once, at the options boundary; the decoder itself only ever
// sees the enumeration.
//
// Returns:
//   - OutputMode: The parsed mode
//   - error: Wraps errs.ErrInvalidOutputMode when the string names neither
func ParseOutputMode(s string) (OutputMode, error) {
	lower := strings.ToLower(s)
	series := strings.Contains(lower, "series")
	ensembles := strings.Contains(lower, "ensemble")

	switch {
	case series && ensembles:
		return OutputSeriesAndEnsembles, nil
	case ensembles:
		return OutputEnsembles, nil
	case series:
		return OutputSeries, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidOutputMode, s)
	}
}
