package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/confstore/internal/format"
	"github.com/dshills/confstore/internal/store"
)

const defaultMarker = "(default)"

// TextWriter outputs a human-readable listing with names aligned per section.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, views []store.SectionView) error {
	ew := &errWriter{w: w}

	if len(views) == 0 {
		ew.println("No sections.")
		return ew.err
	}

	for i, v := range views {
		if i > 0 {
			ew.println("")
		}
		ew.printf("[%s]\n", v.Name)

		width := 0
		for _, e := range v.Entries {
			if n := runewidth.StringWidth(e.Name); n > width {
				width = n
			}
		}
		for _, e := range v.Entries {
			line := "  " + runewidth.FillRight(e.Name, width) + " = " + format.Escape(e.Value)
			if e.Default {
				line += "  " + defaultMarker
			}
			ew.println(strings.TrimRight(line, " "))
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
