package model

// ButtonCombination is one candidate set of buttons approximating a
// requested chord.
type ButtonCombination struct {
	// bass row columns of the button's root
	Bass     []int    `json:"bass"`
	BassNote []string `json:"bassNote"`

	// chord row buttons, offset by 20 per row below major
	Chord []int `json:"chord"`

	Root      []string `json:"root"`
	RootIndex []int    `json:"rootIndex"`

	// empty for the no-match record
	ChordType string   `json:"chordType"`
	Color     string   `json:"color"`
	Notes     []string `json:"notes"`

	MissingNotesBass        []int    `json:"missingNotesBass"`
	MissingNotesCounterbass []int    `json:"missingNotesCounterbass"`
	MissingNotesStr         []string `json:"missingNotesStr"`
	MissingCount            int      `json:"missingCount"`
}

// IsFallback reports whether this is the placeholder produced when no
// button fits the chord.
func (c ButtonCombination) IsFallback() bool {
	return c.ChordType == ""
}

// RootIsBass reports whether the button is rooted on the requested root.
func (c ButtonCombination) RootIsBass() bool {
	if len(c.Bass) != len(c.RootIndex) {
		return false
	}
	in := make(map[int]bool, len(c.RootIndex))
	for _, i := range c.RootIndex {
		in[i] = true
	}
	for _, i := range c.Bass {
		if !in[i] {
			return false
		}
	}
	return true
}

// Displayed caps a ranked list to the first n entries.
func Displayed(combos []ButtonCombination, n int) []ButtonCombination {
	if n <= 0 || len(combos) <= n {
		return combos
	}
	return combos[:n]
}
