package store

import (
	"strconv"

	"github.com/dshills/confstore/internal/section"
)

// SectionCount returns the number of sections in the user layer.
func (s *Store) SectionCount() int {
	return len(s.user)
}

// SectionName returns the name of the user-layer section at idx, in
// insertion order. Indexes shift when sections are added.
func (s *Store) SectionName(idx int) (string, bool) {
	if idx < 0 || idx >= len(s.user) {
		return "", false
	}
	return s.user[idx].Name, true
}

// GetString returns the user value for section/name, falling back to the
// defaults layer. It reports false when neither layer has the item.
func (s *Store) GetString(sec, name string) (string, bool) {
	if item, ok := s.user.Find(sec, name); ok {
		return item.Value, true
	}
	if item, ok := s.defaults.Find(sec, name); ok {
		return item.Value, true
	}
	return "", false
}

// GetInt returns the value as an int64, or 0 if absent. A "0x" prefix
// selects hexadecimal.
func (s *Store) GetInt(sec, name string) int64 {
	v, ok := s.GetString(sec, name)
	if !ok {
		return 0
	}
	return parseInt(v)
}

// GetUint returns the value as a uint64, or 0 if absent.
func (s *Store) GetUint(sec, name string) uint64 {
	v, ok := s.GetString(sec, name)
	if !ok {
		return 0
	}
	return parseUint(v)
}

// GetBool reports whether the value is "true" (in any case) or a nonzero
// number. It returns false if absent.
func (s *Store) GetBool(sec, name string) bool {
	v, ok := s.GetString(sec, name)
	if !ok {
		return false
	}
	return parseBool(v)
}

// GetDouble returns the value as a float64, or 0 if absent.
func (s *Store) GetDouble(sec, name string) float64 {
	v, ok := s.GetString(sec, name)
	if !ok {
		return 0
	}
	return parseDouble(v)
}

// GetDefaultString reads only the defaults layer.
func (s *Store) GetDefaultString(sec, name string) (string, bool) {
	item, ok := s.defaults.Find(sec, name)
	if !ok {
		return "", false
	}
	return item.Value, true
}

// GetDefaultInt reads only the defaults layer.
func (s *Store) GetDefaultInt(sec, name string) int64 {
	v, ok := s.GetDefaultString(sec, name)
	if !ok {
		return 0
	}
	return parseInt(v)
}

// GetDefaultUint reads only the defaults layer.
func (s *Store) GetDefaultUint(sec, name string) uint64 {
	v, ok := s.GetDefaultString(sec, name)
	if !ok {
		return 0
	}
	return parseUint(v)
}

// GetDefaultBool reads only the defaults layer.
func (s *Store) GetDefaultBool(sec, name string) bool {
	v, ok := s.GetDefaultString(sec, name)
	if !ok {
		return false
	}
	return parseBool(v)
}

// GetDefaultDouble reads only the defaults layer.
func (s *Store) GetDefaultDouble(sec, name string) float64 {
	v, ok := s.GetDefaultString(sec, name)
	if !ok {
		return 0
	}
	return parseDouble(v)
}

// HasUserValue reports whether the user layer has the item.
func (s *Store) HasUserValue(sec, name string) bool {
	_, ok := s.user.Find(sec, name)
	return ok
}

// HasDefaultValue reports whether the defaults layer has the item.
func (s *Store) HasDefaultValue(sec, name string) bool {
	_, ok := s.defaults.Find(sec, name)
	return ok
}

// SetString sets a user value, creating the section and item as needed.
func (s *Store) SetString(sec, name, value string) {
	s.user.Set(sec, name, value)
}

// SetInt sets a user value in decimal.
func (s *Store) SetInt(sec, name string, value int64) {
	s.user.Set(sec, name, strconv.FormatInt(value, 10))
}

// SetUint sets a user value in decimal.
func (s *Store) SetUint(sec, name string, value uint64) {
	s.user.Set(sec, name, strconv.FormatUint(value, 10))
}

// SetBool sets a user value to "true" or "false".
func (s *Store) SetBool(sec, name string, value bool) {
	s.user.Set(sec, name, strconv.FormatBool(value))
}

// SetDouble sets a user value in the shortest form that reads back exactly.
func (s *Store) SetDouble(sec, name string, value float64) {
	s.user.Set(sec, name, formatDouble(value))
}

// SetDefaultString sets a value in the defaults layer.
func (s *Store) SetDefaultString(sec, name, value string) {
	s.defaults.Set(sec, name, value)
}

// SetDefaultInt sets a value in the defaults layer.
func (s *Store) SetDefaultInt(sec, name string, value int64) {
	s.defaults.Set(sec, name, strconv.FormatInt(value, 10))
}

// SetDefaultUint sets a value in the defaults layer.
func (s *Store) SetDefaultUint(sec, name string, value uint64) {
	s.defaults.Set(sec, name, strconv.FormatUint(value, 10))
}

// SetDefaultBool sets a value in the defaults layer.
func (s *Store) SetDefaultBool(sec, name string, value bool) {
	s.defaults.Set(sec, name, strconv.FormatBool(value))
}

// SetDefaultDouble sets a value in the defaults layer.
func (s *Store) SetDefaultDouble(sec, name string, value float64) {
	s.defaults.Set(sec, name, formatDouble(value))
}

// RemoveValue deletes the first matching item from the user layer and
// reports whether one was removed. The defaults layer is never touched.
func (s *Store) RemoveValue(sec, name string) bool {
	return s.user.Remove(sec, name)
}

// Entry is one effective value in a Snapshot.
type Entry struct {
	Name    string
	Value   string
	Default bool // the value comes from the defaults layer
}

// SectionView is one section of a Snapshot.
type SectionView struct {
	Name    string
	Entries []Entry
}

// Snapshot returns the effective configuration: every section and item name
// from either layer, each with the value GetString would return. User
// sections come first in insertion order, followed by sections that only
// exist in the defaults layer. Names keep the case of their first occurrence.
func (s *Store) Snapshot() []SectionView {
	var views []SectionView
	for _, layer := range []section.Layer{s.user, s.defaults} {
		for _, sec := range layer {
			i := findView(views, sec.Name)
			if i < 0 {
				views = append(views, SectionView{Name: sec.Name})
				i = len(views) - 1
			}
			for _, item := range sec.Items {
				if findEntry(views[i].Entries, item.Name) >= 0 {
					continue
				}
				value, _ := s.GetString(views[i].Name, item.Name)
				views[i].Entries = append(views[i].Entries, Entry{
					Name:    item.Name,
					Value:   value,
					Default: !s.HasUserValue(views[i].Name, item.Name),
				})
			}
		}
	}
	return views
}

func findView(views []SectionView, name string) int {
	for i := range views {
		if section.Equal(views[i].Name, name) {
			return i
		}
	}
	return -1
}

func findEntry(entries []Entry, name string) int {
	for i := range entries {
		if section.Equal(entries[i].Name, name) {
			return i
		}
	}
	return -1
}
