package section

import "strings"

// Item is a single name/value pair. Values are always raw text.
type Item struct {
	Name  string
	Value string
}

// Section is a named, ordered list of items.
type Section struct {
	Name  string
	Items []Item
}

// Add appends an item without checking for an existing one.
func (s *Section) Add(name, value string) {
	s.Items = append(s.Items, Item{Name: name, Value: value})
}

// Find returns the index of the first item named name, or -1.
func (s *Section) Find(name string) int {
	for i := range s.Items {
		if Equal(s.Items[i].Name, name) {
			return i
		}
	}
	return -1
}

// Layer is an ordered list of sections.
type Layer []*Section

// Append adds a new, empty section and returns it.
func (l *Layer) Append(name string) *Section {
	sec := &Section{Name: name}
	*l = append(*l, sec)
	return sec
}

// Section returns the first section named name, or nil.
func (l Layer) Section(name string) *Section {
	for _, sec := range l {
		if Equal(sec.Name, name) {
			return sec
		}
	}
	return nil
}

// Find returns the first item named name in a section named section. Every
// section with a matching name is searched in order, so an item in a later
// duplicate section is still found.
func (l Layer) Find(section, name string) (*Item, bool) {
	for _, sec := range l {
		if !Equal(sec.Name, section) {
			continue
		}
		if i := sec.Find(name); i >= 0 {
			return &sec.Items[i], true
		}
	}
	return nil, false
}

// Set overwrites the value of the first matching item in the first matching
// section. When that section has no such item one is appended to it, and
// when no section matches a new one is created with the given case.
func (l *Layer) Set(section, name, value string) {
	sec := l.Section(section)
	if sec == nil {
		sec = l.Append(section)
	}
	if i := sec.Find(name); i >= 0 {
		sec.Items[i].Value = value
		return
	}
	sec.Add(name, value)
}

// Remove deletes the first item that Find would return. It reports whether
// anything was removed.
func (l Layer) Remove(section, name string) bool {
	for _, sec := range l {
		if !Equal(sec.Name, section) {
			continue
		}
		if i := sec.Find(name); i >= 0 {
			sec.Items = append(sec.Items[:i], sec.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Equal compares two section or item names ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}
