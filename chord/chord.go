package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/stradella/note"
)

// Type describes a chord quality by its intervals above the root.
//
// Intervals may exceed 11 to express extensions and may repeat 0 to mark an
// unvoiced slot. Neither is deduplicated here; the collapse happens once
// the root has been added.
type Type struct {
	Name        string `json:"name"`
	AltName     string `json:"altName"`
	FullName    string `json:"fullName"`
	Intervals   []int  `json:"intervals"`
	Description string `json:"description"`
}

// Target returns the pitch-class set this type produces on root.
func (t Type) Target(root note.PitchClass) note.Set {
	values := make([]int, 0, len(t.Intervals))
	for _, iv := range t.Intervals {
		values = append(values, iv+root)
	}
	return note.Normalize(values)
}

// CreateChordKey builds a stable key out of the normalized intervals, so
// types that sound the same share a key.
func CreateChordKey(intervals []int) string {
	pcs := note.Normalize(intervals).PitchClasses()
	sort.Ints(pcs)
	var res string
	for i, pc := range pcs {
		res += fmt.Sprintf("%v", pc)
		if i < len(pcs)-1 {
			res += "-"
		}
	}
	return res
}

func (t Type) Key() string {
	return CreateChordKey(t.Intervals)
}

type Catalog []Type

// Default returns a copy of the canonical catalog.
func Default() Catalog {
	return Catalog(defaultTypes).Clone()
}

func (t Type) clone() Type {
	t.Intervals = append([]int(nil), t.Intervals...)
	return t
}

// Clone copies the catalog and every interval list in it.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	res := make(Catalog, len(c))
	for i, t := range c {
		res[i] = t.clone()
	}
	return res
}

// Get looks a type up by its exact name.
func (c Catalog) Get(name string) (Type, bool) {
	for _, t := range c {
		if t.Name == name {
			return t.clone(), true
		}
	}
	return Type{}, false
}

// Find looks a type up by name first, then by alternate name.
func (c Catalog) Find(name string) (Type, bool) {
	if t, ok := c.Get(name); ok {
		return t, true
	}
	for _, t := range c {
		if t.AltName == name {
			return t.clone(), true
		}
	}
	return Type{}, false
}

func (c Catalog) Names() []string {
	res := make([]string, 0, len(c))
	for _, t := range c {
		res = append(res, t.Name)
	}
	return res
}

// Filter returns the types whose name, alt name or full name contains s.
func (c Catalog) Filter(s string) Catalog {
	if s == "" {
		return c
	}
	needle := strings.ToLower(s)
	res := Catalog{}
	for _, t := range c {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.AltName), needle) ||
			strings.Contains(strings.ToLower(t.FullName), needle) {
			res = append(res, t.clone())
		}
	}
	return res
}

// Aliases returns the other types sounding the same pitch-class set as name.
func (c Catalog) Aliases(name string) []string {
	t, ok := c.Find(name)
	if !ok {
		return nil
	}
	key := t.Key()
	var res []string
	for _, other := range c {
		if other.Name != t.Name && other.Key() == key {
			res = append(res, other.Name)
		}
	}
	return res
}

type Match struct {
	Root note.PitchClass
	Type Type
}

// Identify returns every (root, type) pair that sounds exactly s, roots
// ascending from C.
func (c Catalog) Identify(s note.Set) []Match {
	res := []Match{}
	if s.Len() == 0 {
		return res
	}
	for root := 0; root < 12; root++ {
		for _, t := range c {
			if t.Target(root).Equal(s) {
				res = append(res, Match{Root: root, Type: t.clone()})
			}
		}
	}
	return res
}
