package prestashop

import (
	"maps"
	"slices"
)

// Descriptor is the static configuration of one resource kind. Every
// name-derived field is computed once at registration through the exported
// casing helpers, never introspected at call time, and a Resource carries
// its own copy so per-instance overrides stay local.
type Descriptor struct {
	Name      string // canonical kind name, e.g. "StockAvailables"
	APIName   string // collection name in URLs and payloads, e.g. "stock_availables"
	NodeType  string // element name of one item, e.g. "stock_available"
	Root      string // collection root path, e.g. "/stock_availables"
	ModelName string // singular kind name, e.g. "StockAvailable"

	Filter func(m *Model) bool    // optional post-list filter
	Less   func(a, b *Model) bool // optional ordering, applied after the filter

	list lister
}

// describe derives the default descriptor for a kind name, following the
// webservice's naming rules.
func describe(name string) Descriptor {
	apiName := Snake(name)
	return Descriptor{
		Name:      name,
		APIName:   apiName,
		NodeType:  Singular(apiName),
		Root:      "/" + apiName,
		ModelName: Singular(name),
		list:      listByIDs,
	}
}

// kinds registers every supported resource kind, keyed by webservice
// name. Products, manufacturers, combinations, stock availables and
// categories are pure default behavior. Images inline their items in the
// listing payload. Product option values come back ordered by position.
var kinds = registerKinds(
	describe("Products"),
	describe("Manufacturers"),
	describe("Combinations"),
	describe("StockAvailables"),
	describe("Categories"),
	imagesKind(),
	productOptionValuesKind(),
)

func registerKinds(descriptors ...Descriptor) map[string]Descriptor {
	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.APIName] = d
	}
	return m
}

func imagesKind() Descriptor {
	d := describe("Images")
	d.list = listInline
	return d
}

func productOptionValuesKind() Descriptor {
	d := describe("ProductOptionValues")
	d.Less = AscendingBy("position")
	return d
}

// Kinds returns the registered descriptors sorted by webservice name.
func Kinds() []Descriptor {
	names := slices.Collect(maps.Keys(kinds))
	slices.Sort(names)

	out := make([]Descriptor, 0, len(names))
	for _, name := range names {
		out = append(out, kinds[name])
	}
	return out
}
