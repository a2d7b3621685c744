// Package format converts between configuration text and [section.Layer].
//
// Four codecs are provided:
//   - ini:  the native line format: [section] headers, key=value lines,
//     # comments, with \n, \r and \\ escapes in values
//   - json: an object of objects, {"section": {"key": "value"}}, written
//     with four-space indentation; this is what stores write by default
//   - toml: tables and string values, for import and export
//   - yaml: a mapping of mappings, for import and export
//
// [Detect] picks between the two native formats the same way a store does
// when it opens a file: text that starts with '{' is JSON, anything else is
// INI. The INI and JSON decoders are lenient and keep whatever they could
// read before running into malformed input.
package format
