package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/stradella/chord"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/note"
	"github.com/jsphweid/stradella/util"
)

var rowLabels = []string{"Counter", "Root", "Major", "Minor", "Dom 7th", "Dim 7th"}

const (
	labelWidth = 9
	cellWidth  = 4
)

// Render draws the six button rows. Chord buttons used by a combination show
// its 1-based rank, "*" marks a bass button that is also the requested root
// and "o" marks bass or counterbass buttons that supply a missing note.
func Render(w io.Writer, combos []model.ButtonCombination) error {
	var b strings.Builder

	b.WriteString(pad("", labelWidth))
	for col := 0; col < note.Columns; col++ {
		b.WriteString(pad(note.BassName(col), cellWidth))
	}
	b.WriteString("\n")

	for row, label := range rowLabels {
		b.WriteString(pad(label, labelWidth))
		for col := 0; col < note.Columns; col++ {
			b.WriteString(pad(cell(combos, row, col), cellWidth))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func cell(combos []model.ButtonCombination, row int, col int) string {
	for rank, c := range combos {
		switch {
		case row == 0:
			if util.Contains(c.MissingNotesCounterbass, col) {
				return "o"
			}
		case row == 1:
			if c.RootIsBass() && util.Contains(c.Bass, col) {
				return "*"
			}
			if !util.Contains(c.RootIndex, col) && util.Contains(c.MissingNotesBass, col) {
				return "o"
			}
		default:
			if c.IsFallback() {
				continue
			}
			if util.Contains(c.Chord, col+(row-2)*note.Columns) {
				return fmt.Sprint(rank + 1)
			}
		}
	}
	return "."
}

// Table lists each combination with its chord name, notes and missing
// notes. The no-match record is written as a bare row of missing notes.
func Table(w io.Writer, root string, t chord.Type, combos []model.ButtonCombination) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s (%s %s)\n", root, t.Name, root, t.FullName)

	if len(combos) == 0 {
		b.WriteString("no buttons available\n")
	}
	for i, c := range combos {
		if c.IsFallback() {
			fmt.Fprintf(&b, "%d  %s\n", i+1, strings.Join(c.MissingNotesStr, " "))
			continue
		}
		name := fmt.Sprintf("%s %s", first(c.BassNote), c.ChordType)
		fmt.Fprintf(&b, "%d  %-18s %-12s missing: %s\n",
			i+1, name, strings.Join(c.Notes, " "), note.Format(c.MissingNotesStr))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
