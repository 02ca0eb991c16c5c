package button

import (
	"fmt"
	"sync"

	"github.com/jsphweid/stradella/note"
)

type Quality uint8

const (
	Major Quality = iota
	Minor
	Dominant7
	Diminished7
)

// Qualities lists the chord rows in the order they sit on the instrument.
var Qualities = []Quality{Major, Minor, Dominant7, Diminished7}

// the two intervals above the root each chord row sounds
var qualityIntervals = map[Quality][2]int{
	Major:       {4, 7},
	Minor:       {3, 7},
	Dominant7:   {4, 10},
	Diminished7: {3, 9},
}

func (q Quality) String() string {
	switch q {
	case Minor:
		return "Minor"
	case Dominant7:
		return "Dominant 7"
	case Diminished7:
		return "Diminished 7"
	default:
		return "Major"
	}
}

// Symbol is the short suffix used in button labels.
func (q Quality) Symbol() string {
	switch q {
	case Minor:
		return "m"
	case Dominant7:
		return "7"
	case Diminished7:
		return "d"
	default:
		return "M"
	}
}

// RowOffset projects a bass column onto this quality's chord row.
func (q Quality) RowOffset() int {
	return int(q) * note.Columns
}

func (q Quality) Intervals() [2]int {
	return qualityIntervals[q]
}

type Button struct {
	Root    note.PitchClass
	Quality Quality
	Notes   note.Set
}

func (b Button) Label() string {
	return fmt.Sprintf("%s,%s", note.Name(b.Root), b.Quality.Symbol())
}

func New(root note.PitchClass, q Quality) Button {
	iv := q.Intervals()
	return Button{
		Root:    note.Mod12(root),
		Quality: q,
		Notes:   note.Normalize([]int{root, root + iv[0], root + iv[1]}),
	}
}

var (
	catalog     []Button
	catalogOnce sync.Once
)

// Catalog returns every chord button, roots ascending from C and the four
// qualities per root. The slice is shared and must not be modified.
func Catalog() []Button {
	catalogOnce.Do(func() {
		catalog = make([]Button, 0, 12*len(Qualities))
		for n := 0; n < 12; n++ {
			for _, q := range Qualities {
				catalog = append(catalog, New(n, q))
			}
		}
	})
	return catalog
}
