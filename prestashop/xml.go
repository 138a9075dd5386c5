package prestashop

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// parseDocument parses a webservice payload into an XML document rooted at
// the <prestashop> envelope.
func parseDocument(body []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return doc, nil
}

// collectionIDs extracts the item identifiers from a collection payload,
// in document order. The container element carries the collection's api
// name and holds one child element per item, each identified by its id
// attribute.
func collectionIDs(body []byte, apiName, nodeType string) ([]string, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	container, err := xmlquery.Query(doc, "//"+apiName)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", apiName, err)
	}
	if container == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingNode, apiName)
	}

	var ids []string
	for _, item := range childElements(container) {
		if item.Data != nodeType {
			continue
		}
		id := item.SelectAttr("id")
		if id == "" {
			id = strings.TrimSpace(item.InnerText())
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// nodeAttributes extracts the attribute set of a single-item payload. The
// item element carries the kind's singular node type.
func nodeAttributes(body []byte, nodeType string, languageID int) (Attributes, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	item, err := xmlquery.Query(doc, "//"+nodeType)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", nodeType, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingNode, nodeType)
	}
	return elementAttributes(item, languageID), nil
}

// attributeSets extracts one attribute set per item element from a
// collection payload that inlines full items instead of id references.
// An empty collection yields no sets and no error.
func attributeSets(body []byte, nodeType string, languageID int) ([]Attributes, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	items, err := xmlquery.QueryAll(doc, "//"+nodeType)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", nodeType, err)
	}

	sets := make([]Attributes, 0, len(items))
	for _, item := range items {
		sets = append(sets, elementAttributes(item, languageID))
	}
	return sets, nil
}

// elementAttributes flattens one item element into an attribute set: the
// element's own XML attributes first, then one entry per scalar child.
// Multilingual fields hold one <language id="N"> child per shop language
// and resolve through the active language id. Nested containers such as
// <associations> hold collections, not scalars, and are skipped.
func elementAttributes(item *xmlquery.Node, languageID int) Attributes {
	attrs := make(Attributes)

	for _, a := range item.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		attrs[a.Name.Local] = a.Value
	}

	for _, child := range childElements(item) {
		if languages := namedChildren(child, "language"); len(languages) > 0 {
			want := fmt.Sprintf("%d", languageID)
			for _, lang := range languages {
				if lang.SelectAttr("id") == want {
					attrs[child.Data] = lang.InnerText()
					break
				}
			}
			continue
		}
		if len(childElements(child)) > 0 {
			continue
		}
		attrs[child.Data] = child.InnerText()
	}
	return attrs
}

// childElements returns the direct element children of a node.
func childElements(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// namedChildren returns the direct element children with the given name.
func namedChildren(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for _, c := range childElements(n) {
		if c.Data == name {
			out = append(out, c)
		}
	}
	return out
}
