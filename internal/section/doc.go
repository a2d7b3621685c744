// Package section holds the in-memory shape shared by every configuration
// format: an ordered [Layer] of named [Section] values, each holding ordered
// [Item] name/value pairs.
//
// Names keep their original case for serialization but compare
// case-insensitively. Duplicate names are allowed; lookups always resolve to
// the first match in order.
package section
