package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/confstore/internal/store"
)

// ReportWriter outputs the snapshot as a JSON array that keeps the default
// markers, for scripts that need to tell stored values from fallbacks.
type ReportWriter struct{}

type reportSection struct {
	Name    string        `json:"name"`
	Entries []reportEntry `json:"entries"`
}

type reportEntry struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Default bool   `json:"default,omitempty"`
}

func (r *ReportWriter) Write(w io.Writer, views []store.SectionView) error {
	report := make([]reportSection, 0, len(views))
	for _, v := range views {
		rs := reportSection{Name: v.Name, Entries: make([]reportEntry, 0, len(v.Entries))}
		for _, e := range v.Entries {
			rs.Entries = append(rs.Entries, reportEntry{Name: e.Name, Value: e.Value, Default: e.Default})
		}
		report = append(report, rs)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
