package health

import (
	"fmt"
	"sort"
	"strings"
)

// Signal is a single health observation made by a publisher: a severity
// plus the attributes that give it context. Publishers replace their
// current signal wholesale whenever their health changes.
type Signal struct {
	state      Health
	attributes []Attribute
}

// NewSignal creates a signal with the given state and attributes. The
// attribute slice is copied so the caller may reuse or mutate its own copy.
func NewSignal(state Health, attributes []Attribute) Signal {
	cp := make([]Attribute, len(attributes))
	copy(cp, attributes)
	return Signal{state: state, attributes: cp}
}

// NominalSignal returns the zero-attribute Nominal signal every publisher
// starts with.
func NominalSignal() Signal {
	return Signal{state: Nominal}
}

// State returns the signal's severity.
func (s Signal) State() Health { return s.state }

// Attributes returns the signal's attributes. The returned slice must not
// be mutated by the caller.
func (s Signal) Attributes() []Attribute { return s.attributes }

// Equal reports whether two signals carry the same state and the same set
// of attributes, independent of attribute order.
func (s Signal) Equal(other Signal) bool {
	if s.state != other.state {
		return false
	}
	if len(s.attributes) != len(other.attributes) {
		return false
	}

	used := make([]bool, len(other.attributes))
	for _, a := range s.attributes {
		found := false
		for i, b := range other.attributes {
			if used[i] {
				continue
			}
			if equalAttribute(a, b) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// key returns a deterministic encoding of the signal suitable for use as a
// map key. AttributeValue being an interface makes Signal non-comparable
// with ==, so ComponentState indexes signals by this string instead.
func (s Signal) key() string {
	attrs := make([]string, len(s.attributes))
	for i, a := range s.attributes {
		attrs[i] = fmt.Sprintf("%s=%T:%s", a.name, a.value, a.value)
	}
	sort.Strings(attrs)

	var b strings.Builder
	fmt.Fprintf(&b, "%d|", s.state)
	b.WriteString(strings.Join(attrs, ","))
	return b.String()
}

// String returns a human-readable representation of the signal.
func (s Signal) String() string {
	if len(s.attributes) == 0 {
		return s.state.String()
	}

	parts := make([]string, len(s.attributes))
	for i, a := range s.attributes {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s %s", s.state, strings.Join(parts, " "))
}
