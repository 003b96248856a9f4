// Package timeseries defines the decoded time-series data model: TimeSeries
// with its regular value grid, free-form typed properties, and Ensemble
// groupings of related series.
package timeseries

import (
	"strconv"

	"github.com/hydrokit/pixml/chrono"
)

// PropertyKind identifies the concrete type held by a Property.
type PropertyKind uint8

const (
	KindString PropertyKind = 0x1 // KindString represents a string-valued property.
	KindNumber PropertyKind = 0x2 // KindNumber represents a float64-valued property.
	KindTime   PropertyKind = 0x3 // KindTime represents a timestamp-valued property.
)

func (k PropertyKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindTime:
		return "Time"
	default:
		return "Unknown"
	}
}

// Property is a tagged union holding one metadata value: a string, a number,
// or a timestamp. Keeping the tag explicit lets template expansion and
// ensemble property copying switch exhaustively instead of type-asserting an
// untyped value.
type Property struct {
	kind PropertyKind
	str  string
	num  float64
	ts   chrono.Timestamp
}

// StringProperty creates a string-valued property.
func StringProperty(v string) Property {
	return Property{kind: KindString, str: v}
}

// NumberProperty creates a number-valued property.
func NumberProperty(v float64) Property {
	return Property{kind: KindNumber, num: v}
}

// TimeProperty creates a timestamp-valued property.
func TimeProperty(v chrono.Timestamp) Property {
	return Property{kind: KindTime, ts: v}
}

// Kind returns the property's concrete type tag.
func (p Property) Kind() PropertyKind {
	return p.kind
}

// Str returns the string value; valid only for KindString.
func (p Property) Str() string {
	return p.str
}

// Num returns the numeric value; valid only for KindNumber.
func (p Property) Num() float64 {
	return p.num
}

// Time returns the timestamp value; valid only for KindTime.
func (p Property) Time() chrono.Timestamp {
	return p.ts
}

// String renders the property value as text regardless of kind.
func (p Property) String() string {
	switch p.kind {
	case KindString:
		return p.str
	case KindNumber:
		return strconv.FormatFloat(p.num, 'g', -1, 64)
	case KindTime:
		return p.ts.String()
	default:
		return ""
	}
}
