package health

import "fmt"

// Attribute is a name/value pair used to provide context about a signal,
// such as why a publisher reported a degraded state.
type Attribute struct {
	name  string
	value AttributeValue
}

// NewAttribute creates an attribute with the given name and value.
func NewAttribute(name string, value AttributeValue) Attribute {
	return Attribute{name: name, value: value}
}

// Name returns the attribute's name.
func (a Attribute) Name() string { return a.name }

// Value returns the attribute's value.
func (a Attribute) Value() AttributeValue { return a.value }

// String returns a debug-friendly representation of the attribute.
func (a Attribute) String() string {
	return fmt.Sprintf("(%q: %s)", a.name, a.value)
}

// Less orders attributes by name only, ignoring value: two attributes
// sharing a name are equivalent for ordering purposes even when their
// values differ.
func (a Attribute) Less(other Attribute) bool {
	return a.name < other.name
}

// equalAttribute reports whether two attributes have the same name and
// value. Equality considers both fields, unlike ordering, which is by name
// only (see Less).
func equalAttribute(a, b Attribute) bool {
	return a.name == b.name && equalAttributeValue(a.value, b.value)
}
