package note

import (
	"sort"
	"strings"
)

// PitchClass is a note identity modulo the octave, 0 = C.
type PitchClass = int

var names = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// every accepted spelling per pitch class, in preference order
var spellings = [12][]string{
	{"B#", "C"},
	{"C#", "Db"},
	{"D", "Cx"},
	{"D#", "Eb"},
	{"E", "Fb"},
	{"E#", "F"},
	{"F#", "Gb"},
	{"G", "Fx"},
	{"G#", "Ab"},
	{"A", "Bbb"},
	{"A#", "Bb"},
	{"B", "Cb"},
}

var pitchClasses = func() map[string]PitchClass {
	res := make(map[string]PitchClass)
	for pc, ss := range spellings {
		for _, s := range ss {
			res[s] = pc
		}
	}
	return res
}()

func Mod12(v int) PitchClass {
	return ((v % 12) + 12) % 12
}

// Name returns the twelve-tone name for a pitch class.
func Name(pc PitchClass) string {
	return names[Mod12(pc)]
}

func PitchClassOf(name string) (PitchClass, bool) {
	pc, ok := pitchClasses[name]
	return pc, ok
}

// Spellings returns all spellings of a pitch class.
func Spellings(pc PitchClass) []string {
	ss := spellings[Mod12(pc)]
	res := make([]string, len(ss))
	copy(res, ss)
	return res
}

// Equivalents returns every spelling of the same pitch class as name, with
// name itself first. Unknown names yield nil.
func Equivalents(name string) []string {
	pc, ok := PitchClassOf(name)
	if !ok {
		return nil
	}
	res := []string{name}
	for _, s := range spellings[pc] {
		if s != name {
			res = append(res, s)
		}
	}
	return res
}

// SortSpellings orders spellings in place: pinned first, then shorter
// spellings. Equal lengths keep their input order.
func SortSpellings(ss []string, pinned string) {
	sort.SliceStable(ss, func(i, j int) bool {
		a, b := ss[i], ss[j]
		if a == pinned || b == pinned {
			return a == pinned && b != pinned
		}
		return len(a) < len(b)
	})
}

// Names maps pitch classes to their twelve-tone names, preserving order.
func Names(pcs []PitchClass) []string {
	res := make([]string, 0, len(pcs))
	for _, pc := range pcs {
		res = append(res, Name(pc))
	}
	return res
}

// Format joins names with spaces, "None" when empty.
func Format(ns []string) string {
	if len(ns) == 0 {
		return "None"
	}
	return strings.Join(ns, " ")
}
