// Package shapes resolves shape references found in effect nodes to
// human-readable shape metadata.
//
// The interpreter consumes the Resolver interface read-only; the
// concrete table implementation here is built from per-slide shape
// metadata supplied alongside the markup (id, display name,
// placeholder type, text excerpt).
package shapes

import "golang.org/x/text/unicode/norm"

// ShapeInfo describes one shape on a slide.
type ShapeInfo struct {
	DisplayName     string `json:"display_name" yaml:"name"`
	PlaceholderType string `json:"placeholder_type,omitempty" yaml:"placeholder,omitempty"`
	Text            string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Resolver maps a shape-reference identifier from an effect node to
// shape metadata. Read-only; returns false when the reference is not
// known.
type Resolver interface {
	Resolve(ref string) (ShapeInfo, bool)
}

// Table is a map-backed Resolver keyed by shape id.
type Table map[string]ShapeInfo

// NewTable builds a Table from shape metadata, normalizing display
// names to NFC so labels compare and serialize consistently regardless
// of how the source document encoded them.
func NewTable(infos map[string]ShapeInfo) Table {
	t := make(Table, len(infos))
	for id, info := range infos {
		info.DisplayName = norm.NFC.String(info.DisplayName)
		t[id] = info
	}
	return t
}

// Resolve implements Resolver.
func (t Table) Resolve(ref string) (ShapeInfo, bool) {
	info, ok := t[ref]
	return info, ok
}

// Empty is a Resolver that knows no shapes. Useful when no shape
// metadata accompanies the markup; every event then gets a synthetic
// placeholder label.
var Empty Resolver = Table(nil)
