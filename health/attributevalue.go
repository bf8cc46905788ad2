package health

import (
	"fmt"
	"strconv"
)

// AttributeValue is the value half of an Attribute. It is a closed sum type
// over int64, float64, string, and bool — the marker method keeps it from
// being implemented outside this package.
type AttributeValue interface {
	isAttributeValue()
	String() string
}

// IntValue is an AttributeValue holding a signed integer.
type IntValue int64

func (IntValue) isAttributeValue() {}
func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }

// FloatValue is an AttributeValue holding a floating-point number.
type FloatValue float64

func (FloatValue) isAttributeValue() {}
func (v FloatValue) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// StringValue is an AttributeValue holding a string.
type StringValue string

func (StringValue) isAttributeValue() {}
func (v StringValue) String() string  { return string(v) }

// BoolValue is an AttributeValue holding a boolean.
type BoolValue bool

func (BoolValue) isAttributeValue() {}
func (v BoolValue) String() string  { return strconv.FormatBool(bool(v)) }

// equalAttributeValue reports whether a and b have the same dynamic type
// and the same value. Values of different dynamic types are never equal,
// even if their string representations would match.
func equalAttributeValue(a, b AttributeValue) bool {
	switch av := a.(type) {
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case FloatValue:
		bv, ok := b.(FloatValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	default:
		return false
	}
}

// ensure every variant satisfies fmt.Stringer in addition to AttributeValue,
// matching how the rest of the package formats values.
var (
	_ fmt.Stringer = IntValue(0)
	_ fmt.Stringer = FloatValue(0)
	_ fmt.Stringer = StringValue("")
	_ fmt.Stringer = BoolValue(false)
)
