package decoder

import (
	"os"
	"strings"

	"github.com/hydrokit/pixml/timeseries"
)

// expandTemplate expands ${...} tokens in a caller-supplied override against
// a series' identity and properties. Built-in tokens (case-insensitive):
// ${identifier}, ${location}, ${source}, ${type}, ${interval}; any other
// token is looked up in the series' property map, first exactly and then
// case-insensitively. Unresolvable tokens expand to the empty string:
// overrides are caller input, not document content, so a miss is not a
// decode problem.
//
// Expansion runs only after the series identifier has been assigned, since
// templates may reference ${identifier}.
func expandTemplate(template string, ts *timeseries.TimeSeries) string {
	if !strings.Contains(template, "$") {
		return template
	}

	return os.Expand(template, func(token string) string {
		switch strings.ToLower(token) {
		case "identifier":
			return ts.Identifier()
		case "location":
			return ts.Location
		case "source":
			return ts.Source
		case "type":
			return ts.Type
		case "interval":
			return ts.Interval().String()
		}

		if p, ok := ts.Property(token); ok {
			return p.String()
		}
		for _, key := range ts.PropertyKeys() {
			if strings.EqualFold(key, token) {
				p, _ := ts.Property(key)
				return p.String()
			}
		}

		return ""
	})
}
