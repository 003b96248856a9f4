package timeseries

// Ensemble groups the series sharing one resolved ensemble id within a single
// decode pass, typically forecast traces of the same scenario.
//
// Ensembles are created lazily: the first series carrying a new ensemble id
// creates the group and later series with the same id are appended. A series
// belongs to at most one ensemble per decode pass, and groups are never split
// or merged after creation.
type Ensemble struct {
	ID      string
	Name    string
	Members []*TimeSeries

	properties map[string]Property
}

// NewEnsemble creates an empty ensemble with the given resolved id and name.
func NewEnsemble(id, name string) *Ensemble {
	return &Ensemble{
		ID:         id,
		Name:       name,
		properties: make(map[string]Property),
	}
}

// AddMember appends a series to the ensemble.
func (e *Ensemble) AddMember(ts *TimeSeries) {
	e.Members = append(e.Members, ts)
}

// Property returns the shared property stored under key and whether it
// exists. Shared properties are populated by CopySharedProperties.
func (e *Ensemble) Property(key string) (Property, bool) {
	p, ok := e.properties[key]
	return p, ok
}

// CopySharedProperties copies the fixed set of ensemble-level properties
// (SharedEnsembleKeys) from the first member. The document format duplicates
// these facts on every member; the first member encountered is authoritative
// for the group. A no-op for an empty ensemble.
func (e *Ensemble) CopySharedProperties() {
	if len(e.Members) == 0 {
		return
	}

	first := e.Members[0]
	for _, key := range SharedEnsembleKeys {
		if p, ok := first.Property(key); ok {
			e.properties[key] = p
		}
	}
}
