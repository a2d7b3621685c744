// Package store is a text-file-backed configuration store made of named
// sections holding string items.
//
// A [Store] has two independent layers. The user layer is what [Open] reads
// from the store's file and what [Store.Save] writes back; the defaults layer
// is filled separately with [Store.OpenDefaults] or the SetDefault methods.
// Reads look in the user layer first and fall back to the defaults layer.
// Section and item names keep their case but match case-insensitively, and
// when a name appears more than once the first occurrence wins.
//
// Values are always stored as text. The typed accessors (GetInt, GetBool,
// ...) convert on read and return the zero value when the item is absent.
//
// [Store.SaveSafe] writes the new content to a temporary file before the
// existing file is moved aside or removed, so an interrupted save never
// leaves a half-written primary file.
//
// A Store does no locking. Callers that share one across goroutines must
// synchronize access themselves.
package store
