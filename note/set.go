package note

// Set is a pitch-class set that remembers insertion order.
type Set struct {
	order   []PitchClass
	members [12]bool
}

// Normalize reduces every value mod 12 into a set. Duplicates collapse
// after the reduction.
func Normalize(values []int) Set {
	var s Set
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set) Add(v int) {
	pc := Mod12(v)
	if s.members[pc] {
		return
	}
	s.members[pc] = true
	s.order = append(s.order, pc)
}

func (s Set) Has(pc PitchClass) bool {
	return s.members[Mod12(pc)]
}

func (s Set) Len() int {
	return len(s.order)
}

// PitchClasses returns the members in insertion order.
func (s Set) PitchClasses() []PitchClass {
	return append([]PitchClass(nil), s.order...)
}

func (s Set) SubsetOf(other Set) bool {
	for _, pc := range s.order {
		if !other.Has(pc) {
			return false
		}
	}
	return true
}

// Minus returns the members of s not in other, keeping the order of s.
func (s Set) Minus(other Set) []PitchClass {
	var res []PitchClass
	for _, pc := range s.order {
		if !other.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}

// Equal compares membership only.
func (s Set) Equal(other Set) bool {
	return s.members == other.members
}

func (s Set) Names() []string {
	return Names(s.order)
}
