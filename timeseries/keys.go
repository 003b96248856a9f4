package timeseries

// Property keys attached by the decoder. Keys mirror the document's header
// field names; the EnsembleGroup* keys carry the resolved grouping identity
// computed during header decoding.
const (
	PropType                = "Type"
	PropLocationID          = "LocationId"
	PropParameterID         = "ParameterId"
	PropQualifierID         = "QualifierId"
	PropEnsembleID          = "EnsembleId"
	PropEnsembleMemberIndex = "EnsembleMemberIndex"
	PropForecastDate        = "ForecastDate"
	PropMissVal             = "MissVal"
	PropStationName         = "StationName"
	PropLat                 = "Lat"
	PropLon                 = "Lon"
	PropZ                   = "Z"
	PropUnits               = "Units"
	PropEnsembleGroupID     = "EnsembleGroupId"
	PropEnsembleGroupName   = "EnsembleGroupName"
)

// SharedEnsembleKeys is the fixed set of properties that are ensemble-level
// facts duplicated per member by the document format. They are copied from an
// ensemble's first member once all series are decoded.
var SharedEnsembleKeys = []string{
	PropEnsembleID,
	PropForecastDate,
	PropLat,
	PropLon,
	PropZ,
	PropLocationID,
	PropStationName,
}
