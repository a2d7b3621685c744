package output

import (
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff writes a line diff from oldText to newText. Removed lines start with
// "-", added lines with "+" and unchanged lines with a space. It returns
// false if the texts are identical.
func Diff(w io.Writer, oldText, newText string) (bool, error) {
	if oldText == newText {
		return false, nil
	}

	dmp := diffmatchpatch.New()
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	ew := &errWriter{w: w}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, r := range d.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			ew.printf("%s%s\n", prefix, strings.TrimSuffix(lineArray[idx], "\n"))
		}
	}
	return true, ew.err
}
