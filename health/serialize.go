package health

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a Health as its tag name, e.g. "Degraded".
func (h Health) MarshalJSON() ([]byte, error) {
	if !h.valid() {
		return nil, fmt.Errorf("health: cannot marshal invalid Health value %d", int(h))
	}
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a Health from its tag name.
func (h *Health) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	for _, hs := range AllHealthStates {
		if hs.String() == name {
			*h = hs
			return nil
		}
	}
	return fmt.Errorf("health: unknown Health tag %q", name)
}

// MarshalJSON encodes a Filter as an array of the severity tag names it
// selects, e.g. ["Degraded","Critical"].
func (f Filter) MarshalJSON() ([]byte, error) {
	var names []string
	for _, hs := range AllHealthStates {
		if f.Has(hs) {
			names = append(names, hs.String())
		}
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes a Filter from an array of severity tag names.
func (f *Filter) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	var result Filter
	for _, name := range names {
		var hs Health
		if err := (&hs).UnmarshalJSON([]byte(fmt.Sprintf("%q", name))); err != nil {
			return err
		}
		result |= 1 << Filter(hs)
	}
	*f = result
	return nil
}

// attributeValueJSON is the externally-tagged wire shape for an
// AttributeValue: exactly one of its fields is set.
type attributeValueJSON struct {
	Int    *int64   `json:"Int,omitempty"`
	Double *float64 `json:"Double,omitempty"`
	String *string  `json:"String,omitempty"`
	Bool   *bool    `json:"Boolean,omitempty"`
}

func marshalAttributeValue(v AttributeValue) ([]byte, error) {
	var wire attributeValueJSON
	switch av := v.(type) {
	case IntValue:
		n := int64(av)
		wire.Int = &n
	case FloatValue:
		n := float64(av)
		wire.Double = &n
	case StringValue:
		s := string(av)
		wire.String = &s
	case BoolValue:
		b := bool(av)
		wire.Bool = &b
	default:
		return nil, fmt.Errorf("health: unknown AttributeValue type %T", v)
	}
	return json.Marshal(wire)
}

func unmarshalAttributeValue(data []byte) (AttributeValue, error) {
	var wire attributeValueJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	switch {
	case wire.Int != nil:
		return IntValue(*wire.Int), nil
	case wire.Double != nil:
		return FloatValue(*wire.Double), nil
	case wire.String != nil:
		return StringValue(*wire.String), nil
	case wire.Bool != nil:
		return BoolValue(*wire.Bool), nil
	default:
		return nil, fmt.Errorf("health: AttributeValue JSON has no recognized variant")
	}
}

// MarshalJSON encodes an Attribute as its name plus an externally-tagged
// value.
func (a Attribute) MarshalJSON() ([]byte, error) {
	valueBytes, err := marshalAttributeValue(a.value)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	wire.Name = a.name
	wire.Value = valueBytes
	return json.Marshal(wire)
}

// UnmarshalJSON decodes an Attribute from its name/value wire shape.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	value, err := unmarshalAttributeValue(wire.Value)
	if err != nil {
		return err
	}

	a.name = wire.Name
	a.value = value
	return nil
}

type signalJSON struct {
	State      Health      `json:"state"`
	Attributes []Attribute `json:"attributes"`
}

// MarshalJSON encodes a Signal as its state plus its attribute list.
func (s Signal) MarshalJSON() ([]byte, error) {
	attrs := s.attributes
	if attrs == nil {
		attrs = []Attribute{}
	}
	return json.Marshal(signalJSON{State: s.state, Attributes: attrs})
}

// UnmarshalJSON decodes a Signal from its state/attributes wire shape.
func (s *Signal) UnmarshalJSON(data []byte) error {
	var wire signalJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.state = wire.State
	s.attributes = wire.Attributes
	return nil
}

type signalCountJSON struct {
	Signal Signal `json:"signal"`
	Count  int    `json:"count"`
}

type reportJSON struct {
	Name    string                         `json:"name"`
	State   Health                         `json:"state"`
	Counts  [NumHealthStates]int           `json:"counts"`
	Signals [NumHealthStates][]signalCountJSON `json:"signals"`
}

// MarshalJSON encodes a Report as its name, state, per-severity counts, and
// per-severity signal lists.
func (r Report) MarshalJSON() ([]byte, error) {
	var wire reportJSON
	wire.Name = r.name
	wire.State = r.state
	wire.Counts = r.counts

	for i, list := range r.signals {
		out := make([]signalCountJSON, len(list))
		for j, sc := range list {
			out[j] = signalCountJSON{Signal: sc.Signal, Count: sc.Count}
		}
		wire.Signals[i] = out
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes a Report from its wire shape.
func (r *Report) UnmarshalJSON(data []byte) error {
	var wire reportJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.name = wire.Name
	r.state = wire.State
	r.counts = wire.Counts

	for i, list := range wire.Signals {
		out := make([]SignalCount, len(list))
		for j, sc := range list {
			out[j] = SignalCount{Signal: sc.Signal, Count: sc.Count}
		}
		r.signals[i] = out
	}

	return nil
}
