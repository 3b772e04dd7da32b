// Package markup parses raw slide-animation markup into a generic
// labeled tree.
//
// The loader is deliberately dumb: it knows tags, attributes, and
// nesting, and nothing about animation semantics. Any well-formed
// document parses successfully even if none of its tags are recognized
// timing tags. Semantic interpretation lives in the timing package.
//
// Namespace prefixes (p:, a:, p14:) are stripped during parsing so the
// rest of the pipeline matches on local tag names only. Character data
// is discarded: the timing grammar carries all information in
// attributes and structure.
package markup
