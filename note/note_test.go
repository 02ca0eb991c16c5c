package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEverySpellingRoundTrips(t *testing.T) {
	assert := assert.New(t)
	for pc := 0; pc < 12; pc++ {
		for _, s := range Spellings(pc) {
			got, ok := PitchClassOf(s)
			assert.True(ok, s)
			assert.Equal(pc, got, s)
		}
	}
	_, ok := PitchClassOf("H")
	assert.False(ok)
}

func TestNamesAreCanonicalSpellings(t *testing.T) {
	assert := assert.New(t)
	for pc := 0; pc < 12; pc++ {
		assert.Contains(Spellings(pc), Name(pc))
	}
	assert.Equal("Bb", Name(-2))
}

func TestEquivalentsPutsRequestedSpellingFirst(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C", "B#"}, Equivalents("C"))
	assert.Equal([]string{"B#", "C"}, Equivalents("B#"))
	assert.Equal([]string{"Bbb", "A"}, Equivalents("Bbb"))
	assert.Nil(Equivalents("X#"))
}

func TestSortSpellings(t *testing.T) {
	cases := []struct {
		in     []string
		pinned string
		want   []string
	}{
		{[]string{"Bbb", "A"}, "", []string{"A", "Bbb"}},
		{[]string{"A", "Bbb"}, "Bbb", []string{"Bbb", "A"}},
		{[]string{"C#", "Db"}, "", []string{"C#", "Db"}},
		{[]string{"C#", "Db"}, "Db", []string{"Db", "C#"}},
		{[]string{"B#", "C"}, "Eb", []string{"C", "B#"}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v pinned %q", c.in, c.pinned), func(t *testing.T) {
			ss := append([]string(nil), c.in...)
			SortSpellings(ss, c.pinned)
			assert.Equal(t, c.want, ss)
		})
	}
}

func TestCounterbassIsAMajorThirdAboveBass(t *testing.T) {
	assert := assert.New(t)
	for col := 0; col < Columns; col++ {
		bass, ok := PitchClassOf(BassName(col))
		assert.True(ok)
		counter, ok := PitchClassOf(CounterbassName(col))
		assert.True(ok)
		assert.Equal(Mod12(bass+4), counter, "column %d", col)
	}
}

func TestRowsAreBijections(t *testing.T) {
	assert := assert.New(t)
	for col := 0; col < Columns; col++ {
		assert.Equal(col, BassIndex(BassName(col)))
		assert.Equal(col, CounterbassIndex(CounterbassName(col)))
	}
	assert.Equal(-1, BassIndex("E#"))
	assert.Equal(16, CounterbassIndex("E#"))
	assert.Equal(-1, CounterbassIndex("Bbb"))
}

func TestBassRowFollowsFifths(t *testing.T) {
	assert := assert.New(t)
	for col := 1; col < Columns; col++ {
		prev, _ := PitchClassOf(BassName(col - 1))
		curr, _ := PitchClassOf(BassName(col))
		assert.Equal(Mod12(prev+7), curr)
	}
}

func TestNormalizeCollapsesAfterReduction(t *testing.T) {
	assert := assert.New(t)
	s := Normalize([]int{0, 0, 7, 10})
	assert.Equal([]PitchClass{0, 7, 10}, s.PitchClasses())

	s = Normalize([]int{9, 13, 16, 12, 21})
	assert.Equal([]PitchClass{9, 1, 4, 0}, s.PitchClasses())
	assert.Equal([]string{"A", "Db", "E", "C"}, s.Names())
}

func TestSetOperations(t *testing.T) {
	assert := assert.New(t)
	triad := Normalize([]int{0, 4, 7})
	seventh := Normalize([]int{0, 4, 7, 10})
	assert.True(triad.SubsetOf(seventh))
	assert.False(seventh.SubsetOf(triad))
	assert.Equal([]PitchClass{10}, seventh.Minus(triad))
	assert.Empty(triad.Minus(seventh))
	assert.True(Normalize([]int{7, 4, 12}).Equal(triad))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "None", Format(nil))
	assert.Equal(t, "C E G", Format([]string{"C", "E", "G"}))
}
