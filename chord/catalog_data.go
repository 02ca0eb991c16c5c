package chord

// defaultTypes is the built-in catalog. The first four entries are the
// qualities the chord buttons sound.
var defaultTypes = []Type{
	{Name: "maj", AltName: "M", FullName: "Major", Intervals: []int{0, 4, 7}, Description: "Major triad"},
	{Name: "min", AltName: "m", FullName: "Minor", Intervals: []int{0, 3, 7}, Description: "Minor triad"},
	{Name: "7", AltName: "dom7", FullName: "Dominant 7th", Intervals: []int{0, 4, 7, 10}, Description: "Dominant seventh chord"},
	{Name: "dim", AltName: "dim7", FullName: "Diminished 7th", Intervals: []int{0, 3, 6, 9}, Description: "Diminished seventh."},
	{Name: "7#5b9", AltName: "7#5b9", FullName: "7#5b9", Intervals: []int{0, 4, 8, 10, 13}, Description: "An augmented chord (raised 5th) with a dominant 7th and flat 9th."},
	{Name: "m(sus9)", AltName: "m(sus9)", FullName: "m(sus9)", Intervals: []int{0, 3, 7, 14}, Description: "Minor triad plus 9th (no 7th)."},
	{Name: "7sus", AltName: "7sus", FullName: "7th suspended 4th", Intervals: []int{0, 5, 7, 10}, Description: "7th with suspended 4th, dominant 7th with 3rd raised half tone."},
	{Name: "7omit3", AltName: "7omit3", FullName: "7omit3", Intervals: []int{0, 0, 7, 10}, Description: "7th with unvoiced 3rd."},
	{Name: "7b13", AltName: "7b13", FullName: "7b13", Intervals: []int{0, 4, 7, 10, 20}, Description: "7th (including 5th) plus flat 13th (the 9th and 11th are not voiced)."},
	{Name: "aug", AltName: "aug", FullName: "Augmented", Intervals: []int{0, 4, 8}, Description: "Augmented triad."},
	{Name: "13sus4", AltName: "13sus4", FullName: "13sus4", Intervals: []int{0, 5, 7, 10, 14, 21}, Description: "7sus, plus 9th and 13th"},
	{Name: "m9b5", AltName: "m9b5", FullName: "m9b5", Intervals: []int{0, 3, 6, 10, 14}, Description: "Minor triad, flat 5, plus 7th and 9th."},
	{Name: "+7b9", AltName: "+7b9", FullName: "+7b9", Intervals: []int{0, 4, 8, 10, 13}, Description: "An augmented chord (raised 5th) with a dominant 7th and flat 9th."},
	{Name: "aug7b9", AltName: "aug7b9", FullName: "aug7b9", Intervals: []int{0, 4, 8, 10, 13}, Description: "An augmented chord (raised 5th) with a dominant 7th and flat 9th."},
	{Name: "m(b5)", AltName: "m(b5)", FullName: "m(b5)", Intervals: []int{0, 3, 6}, Description: "Minor triad with flat 5th (aka dim)."},
	{Name: "7b9sus", AltName: "7b9sus", FullName: "7b9sus", Intervals: []int{0, 5, 7, 10, 13}, Description: "7th with suspended 4th and flat 9th."},
	{Name: "m7-5", AltName: "m7-5", FullName: "Minor7th Flat 5", Intervals: []int{0, 3, 6, 10}, Description: "Minor 7th, flat 5 (aka 1/2 diminished)."},
	{Name: "m7b9#11", AltName: "m7b9#11", FullName: "m7b9#11", Intervals: []int{0, 3, 7, 10, 13, 18}, Description: "Minor 7th plus flat 9th and sharp 11th."},
	{Name: "7-9", AltName: "7-9", FullName: "7th flat 9th", Intervals: []int{0, 4, 7, 10, 13}, Description: "7th with flat 9th."},
	{Name: "M7(add13)", AltName: "M7(add13)", FullName: "M7(add13)", Intervals: []int{0, 4, 7, 10, 13, 21}, Description: "7th (including 5th) plus 13th and flat 9th (11th not voiced)."},
	{Name: "m#7", AltName: "m#7", FullName: "m#7", Intervals: []int{0, 3, 7, 11}, Description: "Minor Triad plus Major 7th."},
	{Name: "m#5", AltName: "m#5", FullName: "m#5", Intervals: []int{0, 3, 8}, Description: "Minor triad with augmented 5th."},
	{Name: "7b5", AltName: "7b5", FullName: "7b5", Intervals: []int{0, 4, 6, 10}, Description: "7th, flat 5."},
	{Name: "m7b5", AltName: "m7b5", FullName: "m7b5", Intervals: []int{0, 3, 6, 10}, Description: "Minor 7th, flat 5 (aka 1/2 diminished)."},
	{Name: "mM7", AltName: "mM7", FullName: "mM7", Intervals: []int{0, 3, 7, 11}, Description: "Minor Triad plus Major 7th."},
	{Name: "m7b9", AltName: "m7b9", FullName: "m7b9", Intervals: []int{0, 3, 7, 10, 13}, Description: "Minor 7th with added flat 9th."},
	{Name: "13sus", AltName: "13sus", FullName: "13sus", Intervals: []int{0, 5, 7, 10, 14, 21}, Description: "7sus, plus 9th and 13th"},
	{Name: "7b9", AltName: "7b9", FullName: "7b9", Intervals: []int{0, 4, 7, 10, 13}, Description: "7th with flat 9th."},
	{Name: "7(omit3)", AltName: "7(omit3)", FullName: "7(omit3)", Intervals: []int{0, 0, 7, 10}, Description: "7th with unvoiced 3rd."},
	{Name: "dim(b13)", AltName: "dim(b13)", FullName: "dim(b13)", Intervals: []int{0, 3, 6, 9, 8}, Description: "Diminished seventh, added flat 13th."},
	{Name: "7b5b9", AltName: "7b5b9", FullName: "7b5b9", Intervals: []int{0, 4, 6, 10, 13}, Description: "7th with flat 5th and flat 9th."},
	{Name: "omit3(add9)", AltName: "omit3(add9)", FullName: "omit3(add9)", Intervals: []int{0, 0, 7, 14}, Description: "Triad: root, 5th and 9th."},
	{Name: "(add#9)", AltName: "(add#9)", FullName: "(add#9)", Intervals: []int{0, 4, 7, 15}, Description: "Major chord plus sharp 9th (no 7th.)"},
	{Name: "9sus", AltName: "9sus", FullName: "9sus", Intervals: []int{0, 5, 7, 10, 14}, Description: "7sus plus 9th."},
	{Name: "(#5)", AltName: "(#5)", FullName: "(#5)", Intervals: []int{0, 4, 8}, Description: "Augmented triad."},
	{Name: "7b5(add13)", AltName: "7b5(add13)", FullName: "7b5(add13)", Intervals: []int{0, 4, 6, 10, 21}, Description: "7th with flat 5 and 13th."},
	{Name: "11+", AltName: "11+", FullName: "11+", Intervals: []int{0, 0, 8, 10, 14, 17}, Description: "Augmented 11th (sharp 5)."},
	{Name: "+M7", AltName: "+M7", FullName: "+M7", Intervals: []int{0, 4, 8, 11}, Description: "Major 7th with sharp 5th."},
	{Name: "M7", AltName: "M7", FullName: "M7", Intervals: []int{0, 4, 7, 11}, Description: "Major 7th."},
	{Name: "M6", AltName: "M6", FullName: "M6", Intervals: []int{0, 4, 7, 9}, Description: "Major tiad with added 6th."},
	{Name: "M13#11", AltName: "M13#11", FullName: "M13#11", Intervals: []int{0, 4, 7, 11, 18, 21}, Description: "Major 7th plus sharp 11th and 13th (9th not voiced)."},
	{Name: "7-5", AltName: "7-5", FullName: "7-5", Intervals: []int{0, 4, 6, 10}, Description: "7th, flat 5."},
	{Name: "addb9", AltName: "addb9", FullName: "addb9", Intervals: []int{0, 4, 7, 13}, Description: "Major chord plus flat 9th (no 7th.)"},
	{Name: "M9", AltName: "M9", FullName: "M9", Intervals: []int{0, 4, 7, 11, 14}, Description: "Major 7th plus 9th."},
	{Name: "sus(add9)", AltName: "sus(add9)", FullName: "sus(add9)", Intervals: []int{0, 5, 7, 14}, Description: "Suspended 4th, major triad with the 3rd raised half tone plus 9th."},
	{Name: "M9#11", AltName: "M9#11", FullName: "M9#11", Intervals: []int{0, 4, 7, 11, 14, 18}, Description: "Major 9th plus sharp 11th."},
	{Name: "+", AltName: "+", FullName: "+", Intervals: []int{0, 4, 8}, Description: "Augmented triad."},
	{Name: "msus", AltName: "msus", FullName: "msus", Intervals: []int{0, 3, 5, 7}, Description: "Minor suspended 4th, minor triad plus 4th."},
	{Name: "m+7", AltName: "m+7", FullName: "m+7", Intervals: []int{0, 3, 7, 11}, Description: "Minor Triad plus Major 7th."},
	{Name: "m+5", AltName: "m+5", FullName: "m+5", Intervals: []int{0, 3, 8}, Description: "Minor triad with augmented 5th."},
	{Name: "sus", AltName: "sus", FullName: "Suspended 4th", Intervals: []int{0, 5, 7}, Description: "Suspended 4th, major triad with the 3rd raised half tone."},
	{Name: "9sus4", AltName: "9sus4", FullName: "9sus4", Intervals: []int{0, 5, 7, 10, 14}, Description: "7sus plus 9th."},
	{Name: "7#5#9", AltName: "7#5#9", FullName: "7#5#9", Intervals: []int{0, 4, 8, 10, 15}, Description: "7th with sharp 5th and sharp 9th."},
	{Name: "7+", AltName: "7+", FullName: "7+", Intervals: []int{0, 4, 8, 10}, Description: "An augmented chord (raised 5th) with a dominant 7th."},
	{Name: "13susb9", AltName: "13susb9", FullName: "13susb9", Intervals: []int{0, 5, 7, 10, 13, 21}, Description: "7sus, plus flat 9th and 13th"},
	{Name: "m+7b9", AltName: "m+7b9", FullName: "m+7b9", Intervals: []int{0, 3, 8, 10, 13}, Description: "Augmented minor 7 plus flat 9th."},
	{Name: "7+9", AltName: "7+9", FullName: "7+9", Intervals: []int{0, 4, 7, 10, 15}, Description: "7th with sharp 9th."},
	{Name: "min(maj7)", AltName: "min(maj7)", FullName: "min(maj7)", Intervals: []int{0, 3, 7, 11}, Description: "Minor Triad plus Major 7th."},
	{Name: "m7(b9)", AltName: "m7(b9)", FullName: "m7(b9)", Intervals: []int{0, 3, 7, 10, 13}, Description: "Minor 7th with added flat 9th."},
	{Name: "13#11", AltName: "13#11", FullName: "13#11", Intervals: []int{0, 4, 7, 10, 18, 21}, Description: "7th plus sharp 11th and 13th (9th not voiced)."},
	{Name: "sus(add#9)", AltName: "sus(add#9)", FullName: "sus(add#9)", Intervals: []int{0, 5, 7, 15}, Description: "Suspended 4th, major triad with the 3rd raised half tone plus sharp 9th."},
	{Name: "7susb9", AltName: "7susb9", FullName: "7susb9", Intervals: []int{0, 5, 7, 10, 13}, Description: "7th with suspended 4th and flat 9th."},
	{Name: "13b9", AltName: "13b9", FullName: "13b9", Intervals: []int{0, 4, 7, 10, 13, 21}, Description: "7th (including 5th) plus 13th and flat 9th (11th not voiced)."},
	{Name: "7#5", AltName: "7#5", FullName: "7#5", Intervals: []int{0, 4, 8, 10}, Description: "An augmented chord (raised 5th) with a dominant 7th."},
	{Name: "M7-5", AltName: "M7-5", FullName: "M7-5", Intervals: []int{0, 4, 6, 11}, Description: "Major 7th with a flat 5th."},
	{Name: "7#9", AltName: "7#9", FullName: "7#9", Intervals: []int{0, 4, 7, 10, 15}, Description: "7th with sharp 9th."},
	{Name: "(add9)", AltName: "(add9)", FullName: "(add9)", Intervals: []int{0, 4, 7, 14}, Description: "Major chord plus 9th (no 7th.)"},
	{Name: "mM7(add9)", AltName: "mM7(add9)", FullName: "mM7(add9)", Intervals: []int{0, 3, 7, 11, 14}, Description: "Minor Triad plus Major 7th and 9th."},
	{Name: "add#9", AltName: "add#9", FullName: "add#9", Intervals: []int{0, 4, 7, 15}, Description: "Major chord plus sharp 9th (no 7th.)"},
	{Name: "add9", AltName: "add9", FullName: "add9", Intervals: []int{0, 4, 7, 14}, Description: "Major chord plus 9th (no 7th.)"},
	{Name: "m6(add9)", AltName: "m6(add9)", FullName: "m6(add9)", Intervals: []int{0, 3, 7, 14, 21}, Description: "Minor 6th with added 9th."},
	{Name: "13#9", AltName: "13#9", FullName: "13#9", Intervals: []int{0, 4, 7, 10, 15, 21}, Description: "7th (including 5th) plus 13th and sharp 9th (11th not voiced)."},
	{Name: "m7(add13)", AltName: "m7(add13)", FullName: "m7(add13)", Intervals: []int{0, 3, 7, 10, 21}, Description: "Minor 7th  plus 13th."},
	{Name: "+9", AltName: "+9", FullName: "+9", Intervals: []int{0, 4, 8, 10, 14}, Description: "7th plus 9th with sharp 5th (same as aug9)."},
	{Name: "11#5", AltName: "11#5", FullName: "11#5", Intervals: []int{0, 0, 8, 10, 14, 17}, Description: "Augmented 11th (sharp 5)."},
	{Name: "m7sus4", AltName: "m7sus4", FullName: "m7sus4", Intervals: []int{0, 3, 5, 7, 10}, Description: "Minor suspended 4th, minor triad plus 4th and dominant 7th."},
	{Name: "m11", AltName: "m11", FullName: "m11", Intervals: []int{0, 3, 7, 10, 14, 17}, Description: "9th with minor 3rd,  plus 11th."},
	{Name: "m13", AltName: "m13", FullName: "m13", Intervals: []int{0, 3, 7, 10, 21}, Description: "Minor 7th (including 5th) plus 13th (9th and 11th not voiced)."},
	{Name: "69", AltName: "69", FullName: "69", Intervals: []int{0, 4, 7, 14, 21}, Description: "6th with added 9th. This is sometimes notated as a slash chord in the form ``6/9''."},
	{Name: "+9M7", AltName: "+9M7", FullName: "+9M7", Intervals: []int{0, 4, 8, 11, 14}, Description: "An augmented chord (raised 5th) with a major 7th and 9th."},
	{Name: "min#7", AltName: "min#7", FullName: "min#7", Intervals: []int{0, 3, 7, 11}, Description: "Minor Triad plus Major 7th."},
	{Name: "m7sus", AltName: "m7sus", FullName: "m7sus", Intervals: []int{0, 3, 5, 7, 10}, Description: "Minor suspended 4th, minor triad plus 4th and dominant 7th."},
	{Name: "7+5", AltName: "7+5", FullName: "7+5", Intervals: []int{0, 4, 8, 10}, Description: "An augmented chord (raised 5th) with a dominant 7th."},
	{Name: "dim7(addM7)", AltName: "dim7(addM7)", FullName: "dim7(addM7)", Intervals: []int{0, 3, 6, 9, 11}, Description: "Diminished tirad with added Major 7th."},
	{Name: "m+", AltName: "m+", FullName: "m+", Intervals: []int{0, 3, 8}, Description: "Minor triad with augmented 5th."},
	{Name: "m7", AltName: "m7", FullName: "m7", Intervals: []int{0, 3, 7, 10}, Description: "Minor 7th (flat 3rd plus dominant 7th)."},
	{Name: "m6", AltName: "m6", FullName: "m6", Intervals: []int{0, 3, 7, 9}, Description: "Minor 6th (flat 3rd plus a 6th)."},
	{Name: "6", AltName: "6", FullName: "6", Intervals: []int{0, 4, 7, 9}, Description: "Major tiad with added 6th."},
	{Name: "(addb9)", AltName: "(addb9)", FullName: "(addb9)", Intervals: []int{0, 4, 7, 13}, Description: "Major chord plus flat 9th (no 7th.)"},
	{Name: "m9", AltName: "m9", FullName: "m9", Intervals: []int{0, 3, 7, 10, 14}, Description: "Minor triad plus 7th and 9th."},
	{Name: "7#9b13", AltName: "7#9b13", FullName: "7#9b13", Intervals: []int{0, 4, 7, 10, 15, 20}, Description: "7th with sharp 9th and flat 13th."},
	{Name: "+7#9", AltName: "+7#9", FullName: "+7#9", Intervals: []int{0, 4, 8, 10, 15}, Description: "An augmented chord (raised 5th) with a dominant 7th and sharp 9th."},
	{Name: "M#11", AltName: "M#11", FullName: "M#11", Intervals: []int{0, 4, 7, 11, 18}, Description: "Major triad plus sharp 11th."},
	{Name: "M7#5", AltName: "M7#5", FullName: "M7#5", Intervals: []int{0, 4, 8, 11}, Description: "Major 7th with sharp 5th."},
	{Name: "+7b9#11", AltName: "+7b9#11", FullName: "+7b9#11", Intervals: []int{0, 4, 8, 10, 13, 18}, Description: "Augmented 7th with flat 9th and sharp 11th."},
	{Name: "m7(omit5)", AltName: "m7(omit5)", FullName: "m7(omit5)", Intervals: []int{0, 3, 10}, Description: "Minor 7th with unvoiced 5th."},
	{Name: "m+7#9", AltName: "m+7#9", FullName: "m+7#9", Intervals: []int{0, 3, 8, 10, 15}, Description: "Augmented minor 7 plus sharp 9th."},
	{Name: "mb9", AltName: "mb9", FullName: "mb9", Intervals: []int{0, 3, 7, 13}, Description: "Minor chord plus flat 9th (no 7th.)"},
	{Name: "m+7b9#11", AltName: "m+7b9#11", FullName: "m+7b9#11", Intervals: []int{0, 3, 8, 10, 13, 18}, Description: "Augmented minor 7th with flat 9th and sharp 11th."},
	{Name: "mb5", AltName: "mb5", FullName: "mb5", Intervals: []int{0, 3, 6}, Description: "Minor triad with flat 5th (aka dim)."},
	{Name: "7#11", AltName: "7#11", FullName: "7#11", Intervals: []int{0, 4, 7, 10, 18}, Description: "7th plus sharp 11th (9th omitted)."},
	{Name: "maj13", AltName: "maj13", FullName: "maj13", Intervals: []int{0, 4, 7, 11, 21}, Description: "Major 7th (including 5th) plus 13th (9th and  11th not voiced)."},
	{Name: "m7b5b9", AltName: "m7b5b9", FullName: "m7b5b9", Intervals: []int{0, 3, 6, 10, 13}, Description: "Minor 7th with flat 5th and flat 9th."},
	{Name: "11", AltName: "11", FullName: "11", Intervals: []int{0, 0, 7, 10, 14, 17}, Description: "9th chord plus 11th (3rd not voiced)."},
	{Name: "13", AltName: "13", FullName: "13", Intervals: []int{0, 4, 7, 10, 21}, Description: "7th (including 5th) plus 13th (the 9th and 11th are not voiced)."},
	{Name: "9-5", AltName: "9-5", FullName: "9-5", Intervals: []int{0, 4, 6, 10, 14}, Description: "7th plus 9th with flat 5th."},
	{Name: "msus4", AltName: "msus4", FullName: "msus4", Intervals: []int{0, 3, 5, 7}, Description: "Minor suspended 4th, minor triad plus 4th."},
	{Name: "9b5", AltName: "9b5", FullName: "9b5", Intervals: []int{0, 4, 6, 10, 14}, Description: "7th plus 9th with flat 5th."},
	{Name: "9b6", AltName: "9b6", FullName: "9b6", Intervals: []int{0, 4, 8, 14}, Description: "9th with flat 6 (no 5th or 7th)."},
	{Name: "M11", AltName: "M11", FullName: "M11", Intervals: []int{0, 4, 7, 11, 14, 17}, Description: "Major 9th plus 11th."},
	{Name: "11b9", AltName: "11b9", FullName: "11b9", Intervals: []int{0, 4, 7, 10, 13, 17}, Description: "7th chord plus flat 9th and 11th."},
	{Name: "M13", AltName: "M13", FullName: "M13", Intervals: []int{0, 4, 7, 11, 21}, Description: "Major 7th (including 5th) plus 13th (9th and  11th not voiced)."},
	{Name: "13b5", AltName: "13b5", FullName: "13b5", Intervals: []int{0, 4, 6, 10, 20}, Description: "7th with flat 5th,  plus 13th (the 9th and 11th are not voiced)."},
	{Name: "7b9#11", AltName: "7b9#11", FullName: "7b9#11", Intervals: []int{0, 4, 7, 10, 13, 18}, Description: "7th plus flat 9th and sharp 11th."},
	{Name: "m7(add11)", AltName: "m7(add11)", FullName: "m7(add11)", Intervals: []int{0, 3, 7, 10, 17}, Description: "Minor 7th  plus 11th."},
	{Name: "M7#11", AltName: "M7#11", FullName: "M7#11", Intervals: []int{0, 4, 7, 11, 18}, Description: "Major 7th plus sharp 11th (9th omitted)."},
	{Name: "m(maj7)", AltName: "m(maj7)", FullName: "m(maj7)", Intervals: []int{0, 3, 7, 11}, Description: "Minor Triad plus Major 7th."},
	{Name: "9+", AltName: "9+", FullName: "9+", Intervals: []int{0, 4, 8, 10, 14}, Description: "7th plus 9th with sharp 5th (same as aug9)."},
	{Name: "m7omit5", AltName: "m7omit5", FullName: "m7omit5", Intervals: []int{0, 3, 10}, Description: "Minor 7th with unvoiced 5th."},
	{Name: "dim3", AltName: "dim3", FullName: "dim3", Intervals: []int{0, 3, 6}, Description: "Diminished triad (non-standard notation)."},
	{Name: "aug9", AltName: "aug9", FullName: "aug9", Intervals: []int{0, 4, 8, 10, 14}, Description: "7th plus 9th with sharp 5th (same as aug9)."},
	{Name: "dim7", AltName: "dim7", FullName: "dim7", Intervals: []int{0, 3, 6, 9}, Description: "Diminished seventh."},
	{Name: "sus(addb9)", AltName: "sus(addb9)", FullName: "sus(addb9)", Intervals: []int{0, 5, 7, 13}, Description: "Suspended 4th, major triad with the 3rd raised half tone plus flat 9th."},
	{Name: "m9#11", AltName: "m9#11", FullName: "m9#11", Intervals: []int{0, 3, 7, 10, 14, 18}, Description: "Minor 7th plus 9th and sharp 11th."},
	{Name: "aug7", AltName: "aug7", FullName: "aug7", Intervals: []int{0, 4, 8, 10}, Description: "An augmented chord (raised 5th) with a dominant 7th."},
	{Name: "M7+5", AltName: "M7+5", FullName: "M7+5", Intervals: []int{0, 4, 8, 11}, Description: "Major 7th with sharp 5th."},
	{Name: "m11b5", AltName: "m11b5", FullName: "m11b5", Intervals: []int{0, 3, 6, 10, 14, 17}, Description: "Minor 7th with flat 5th plus 11th."},
	{Name: "m7(#9)", AltName: "m7(#9)", FullName: "m7(#9)", Intervals: []int{0, 3, 7, 10, 15}, Description: "Minor 7th with added sharp 9th."},
	{Name: "(b5)", AltName: "(b5)", FullName: "(b5)", Intervals: []int{0, 4, 6}, Description: "Major triad with flat 5th."},
	{Name: "7#9#11", AltName: "7#9#11", FullName: "7#9#11", Intervals: []int{0, 4, 7, 10, 15, 18}, Description: "7th plus sharp 9th and sharp 11th."},
	{Name: "7(add13)", AltName: "7(add13)", FullName: "7(add13)", Intervals: []int{0, 4, 7, 10, 21}, Description: "7th with added 13th."},
	{Name: "m(add9)", AltName: "m(add9)", FullName: "m(add9)", Intervals: []int{0, 3, 7, 14}, Description: "Minor triad plus 9th (no 7th)."},
	{Name: "5", AltName: "5", FullName: "5", Intervals: []int{0, 0, 7, 7}, Description: "Altered Fifth or Power Chord; root and 5th only."},
	{Name: "maj9", AltName: "maj9", FullName: "maj9", Intervals: []int{0, 4, 7, 11, 14}, Description: "Major 7th plus 9th."},
	{Name: "9", AltName: "9", FullName: "9", Intervals: []int{0, 4, 7, 10, 14}, Description: "7th plus 9th."},
	{Name: "+7", AltName: "+7", FullName: "+7", Intervals: []int{0, 4, 8, 10}, Description: "An augmented chord (raised 5th) with a dominant 7th."},
	{Name: "maj7", AltName: "maj7", FullName: "maj7", Intervals: []int{0, 4, 7, 11}, Description: "Major 7th."},
	{Name: "aug7#9", AltName: "aug7#9", FullName: "aug7#9", Intervals: []int{0, 4, 8, 10, 15}, Description: "An augmented chord (raised 5th) with a dominant 7th and sharp 9th."},
	{Name: "7b5#9", AltName: "7b5#9", FullName: "7b5#9", Intervals: []int{0, 4, 6, 10, 15}, Description: "7th with flat 5th and sharp 9th."},
	{Name: "omit3add9", AltName: "omit3add9", FullName: "omit3add9", Intervals: []int{0, 0, 7, 14}, Description: "Triad: root, 5th and 9th."},
	{Name: "M7b5", AltName: "M7b5", FullName: "M7b5", Intervals: []int{0, 4, 6, 11}, Description: "Major 7th with a flat 5th."},
	{Name: "9#11", AltName: "9#11", FullName: "9#11", Intervals: []int{0, 4, 7, 10, 14, 18}, Description: "7th plus 9th and sharp 11th."},
	{Name: "7alt", AltName: "7alt", FullName: "7alt", Intervals: []int{0, 4, 6, 10, 13}, Description: "Uses a 7th flat 5, flat 9. Probably not correct, but works (mostly)."},
	{Name: "sus2", AltName: "sus2", FullName: "sus2", Intervals: []int{0, 2, 7}, Description: "Suspended 2nd, major triad with the major 2nd above the root substituted for 3rd."},
	{Name: "sus4", AltName: "sus4", FullName: "sus4", Intervals: []int{0, 5, 7}, Description: "Suspended 4th, major triad with the 3rd raised half tone."},
	{Name: "sus9", AltName: "sus9", FullName: "sus9", Intervals: []int{0, 5, 7, 10, 14}, Description: "7sus plus 9th."},
	{Name: "aug9M7", AltName: "aug9M7", FullName: "aug9M7", Intervals: []int{0, 4, 8, 11, 14}, Description: "An augmented chord (raised 5th) with a major 7th and 9th."},
	{Name: "7(6)", AltName: "7(6)", FullName: "7(6)", Intervals: []int{0, 4, 7, 9, 10}, Description: "7th with added 6th."},
	{Name: "m7#9", AltName: "m7#9", FullName: "m7#9", Intervals: []int{0, 3, 7, 10, 15}, Description: "Minor 7th with added sharp 9th."},
	{Name: "m7#5", AltName: "m7#5", FullName: "m7#5", Intervals: []int{0, 4, 8, 10}, Description: "Minor 7th with sharp 5th."},
	{Name: "m69", AltName: "m69", FullName: "m69", Intervals: []int{0, 3, 7, 14, 21}, Description: "Minor 6th with added 9th."},
	{Name: "9#5", AltName: "9#5", FullName: "9#5", Intervals: []int{0, 4, 8, 10, 14}, Description: "7th plus 9th with sharp 5th (same as aug9)."},
	{Name: "6(add9)", AltName: "6(add9)", FullName: "6(add9)", Intervals: []int{0, 4, 7, 14, 21}, Description: "6th with added 9th."},
	{Name: "7sus4", AltName: "7sus4", FullName: "7sus4", Intervals: []int{0, 5, 7, 10}, Description: "7th with suspended 4th, dominant 7th with 3rd raised half tone."},
	{Name: "7sus2", AltName: "7sus2", FullName: "7sus2", Intervals: []int{0, 2, 7, 10}, Description: "A sus2 with dominant 7th added."},
	{Name: "9+5", AltName: "9+5", FullName: "9+5", Intervals: []int{0, 4, 8, 10, 14}, Description: "7th plus 9th with sharp 5th (same as aug9)."},
}
