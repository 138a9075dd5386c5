package prestashop

import (
	"maps"
	"slices"

	"github.com/spf13/cast"
)

// Attributes is the parsed attribute set of one remote object. Values stay
// strings the way the webservice serialized them; the Model accessors
// convert on demand.
type Attributes map[string]string

// Model is an in-memory representation of one remote object. A model is an
// immutable attribute bag: once constructed it never touches the network
// again, and an empty model stands in for an object that could not be
// requested.
type Model struct {
	client   *Client
	resource *Resource
	attrs    Attributes
}

// NewModel wraps a detached attribute set in a model. Useful for filter
// evaluation and tests; models produced by a Resource additionally carry
// their origin.
func NewModel(attrs Attributes) *Model {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Model{attrs: attrs}
}

// Attr returns the raw value of one attribute, or the empty string when
// the attribute is absent.
func (m *Model) Attr(name string) string {
	return m.attrs[name]
}

// Has reports whether the attribute is present.
func (m *Model) Has(name string) bool {
	_, ok := m.attrs[name]
	return ok
}

// ID returns the object's numeric identifier, or 0 when absent.
func (m *Model) ID() int {
	return cast.ToInt(m.attrs["id"])
}

// Name returns the object's name attribute, resolved to the client's
// active language at parse time.
func (m *Model) Name() string {
	return m.attrs["name"]
}

// Int converts one attribute to an int, returning 0 when the value is
// absent or not numeric.
func (m *Model) Int(name string) int {
	return cast.ToInt(m.attrs[name])
}

// Float converts one attribute to a float64, returning 0 when the value
// is absent or not numeric.
func (m *Model) Float(name string) float64 {
	return cast.ToFloat64(m.attrs[name])
}

// Bool converts one attribute to a bool. The webservice serializes flags
// as "0" and "1".
func (m *Model) Bool(name string) bool {
	return cast.ToBool(m.attrs[name])
}

// Empty reports whether the model carries no attributes at all, which is
// how degraded single-item lookups surface.
func (m *Model) Empty() bool {
	return len(m.attrs) == 0
}

// Keys returns the attribute names in sorted order.
func (m *Model) Keys() []string {
	keys := slices.Collect(maps.Keys(m.attrs))
	slices.Sort(keys)
	return keys
}

// Attrs returns a copy of the full attribute set.
func (m *Model) Attrs() Attributes {
	return maps.Clone(m.attrs)
}

// Resource returns the resource this model was fetched through, or nil
// for detached models.
func (m *Model) Resource() *Resource {
	return m.resource
}
