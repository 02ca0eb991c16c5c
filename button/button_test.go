package button

import (
	"testing"

	"github.com/jsphweid/stradella/note"
	"github.com/stretchr/testify/assert"
)

func TestCatalogHasFortyEightButtons(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Catalog(), 48)

	seen := make(map[string]bool)
	for _, b := range Catalog() {
		assert.False(seen[b.Label()], b.Label())
		seen[b.Label()] = true
	}
}

func TestCatalogSoundsTheQualityIntervals(t *testing.T) {
	want := map[Quality][]int{
		Major:       {0, 4, 7},
		Minor:       {0, 3, 7},
		Dominant7:   {0, 4, 10},
		Diminished7: {0, 3, 9},
	}
	for i, b := range Catalog() {
		assert.Equal(t, i/4, b.Root)
		assert.Equal(t, Qualities[i%4], b.Quality)

		var values []int
		for _, iv := range want[b.Quality] {
			values = append(values, b.Root+iv)
		}
		expected := note.Normalize(values)
		assert.True(t, expected.Equal(b.Notes), b.Label())
		assert.Equal(t, 3, b.Notes.Len(), b.Label())
	}
}

func TestCatalogIsBuiltOnce(t *testing.T) {
	a := Catalog()
	b := Catalog()
	assert.Same(t, &a[0], &b[0])
}

func TestRowOffsets(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Major.RowOffset())
	assert.Equal(20, Minor.RowOffset())
	assert.Equal(40, Dominant7.RowOffset())
	assert.Equal(60, Diminished7.RowOffset())
}

func TestLabels(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C,M", New(0, Major).Label())
	assert.Equal("Eb,d", New(15, Diminished7).Label())
	assert.Equal("Dominant 7", Dominant7.String())
	assert.Equal([]string{"G", "B", "F"}, New(7, Dominant7).Notes.Names())
}
