package prestashop

import (
	"strings"
	"unicode"
)

// Snake converts a StudlyCaps kind name to its snake_case webservice name,
// e.g. "StockAvailables" becomes "stock_availables".
func Snake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Studly converts a snake_case webservice name back to StudlyCaps,
// e.g. "product_option_values" becomes "ProductOptionValues".
func Studly(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// Singular strips the plural marker from a collection name following the
// webservice's own naming rules: "products" becomes "product",
// "categories" becomes "category". Names without a plural marker pass
// through unchanged.
func Singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies"):
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "s"):
		return strings.TrimSuffix(name, "s")
	}
	return name
}
