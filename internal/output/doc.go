// Package output formats configuration snapshots for display or machine
// consumption.
//
// Three formats are supported:
//   - text: aligned name = value listing per section (default)
//   - json: the store's JSON file format
//   - ini:  the legacy INI file format
//   - report: JSON array of sections that keeps the default markers
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and the views from [store.Store.Snapshot].
// [Diff] renders a line diff between two encodings of a file, used by the
// CLI's dry-run mode.
package output
