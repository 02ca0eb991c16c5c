package resolve

import (
	"io"
	"log/slog"

	"github.com/jsphweid/stradella/button"
	"github.com/jsphweid/stradella/chord"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/note"
	"github.com/jsphweid/stradella/util"
)

// Resolver finds the Stradella buttons that approximate a chord. It holds
// no mutable state once built and may be shared between goroutines.
type Resolver struct {
	catalog         chord.Catalog
	palette         []string
	logger          *slog.Logger
	shiftedFallback bool
}

type Option func(*Resolver)

// WithCatalog replaces the chord types the resolver accepts.
func WithCatalog(c chord.Catalog) Option {
	return func(r *Resolver) {
		r.catalog = c.Clone()
	}
}

func WithPalette(colors []string) Option {
	return func(r *Resolver) {
		if len(colors) > 0 {
			r.palette = append([]string(nil), colors...)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithShiftedFallback computes the no-match record's missing buttons from
// the chord raised by one semitone, matching the behavior of the first
// published version of the tool.
func WithShiftedFallback() Option {
	return func(r *Resolver) {
		r.shiftedFallback = true
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		catalog: chord.Default(),
		palette: Palette,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns a copy of the chord types the resolver accepts.
func (r *Resolver) Catalog() chord.Catalog {
	return r.catalog.Clone()
}

// ResolveName resolves a chord type given by name or alternate name.
func (r *Resolver) ResolveName(root string, name string) []model.ButtonCombination {
	t, ok := r.catalog.Find(name)
	if !ok {
		return []model.ButtonCombination{}
	}
	return r.Resolve(root, t)
}

// Resolve returns the button combinations whose sounded notes are a subset
// of t built on root, best first.
//
// An unknown root spelling, a root missing from the bass row or a type
// missing from the catalog yield an empty list. When no button fits, the
// list holds a single record with an empty ChordType.
func (r *Resolver) Resolve(root string, t chord.Type) []model.ButtonCombination {
	pc, ok := note.PitchClassOf(root)
	if !ok || note.BassIndex(root) < 0 {
		return []model.ButtonCombination{}
	}
	ct, ok := r.catalog.Get(t.Name)
	if !ok {
		return []model.ButtonCombination{}
	}

	target := ct.Target(pc)
	roots := note.Equivalents(root)
	note.SortSpellings(roots, root)

	var combos []model.ButtonCombination
	for _, b := range button.Catalog() {
		if !b.Notes.SubsetOf(target) {
			continue
		}
		c := combination(root, roots, b, target)
		r.logger.Debug("button fits",
			"button", b.Label(),
			"has", note.Format(c.Notes),
			"missing", note.Format(c.MissingNotesStr))
		combos = append(combos, c)
	}

	if len(combos) == 0 {
		r.logger.Debug("no button fits", "root", root, "type", ct.Name)
		return []model.ButtonCombination{r.fallback(root, pc, ct, target)}
	}

	RankSort(combos)
	AssignColors(combos, r.palette)
	return combos
}

func combination(root string, roots []string, b button.Button, target note.Set) model.ButtonCombination {
	bassNote := note.Equivalents(note.Name(b.Root))
	note.SortSpellings(bassNote, root)
	bass := bassIndices(bassNote)

	offset := b.Quality.RowOffset()
	chordIndex := make([]int, 0, len(bass))
	for _, i := range bass {
		chordIndex = append(chordIndex, i+offset)
	}

	missing := target.Minus(b.Notes)
	return model.ButtonCombination{
		Bass:                    bass,
		BassNote:                bassNote,
		Chord:                   chordIndex,
		Root:                    append([]string(nil), roots...),
		RootIndex:               bassIndices(roots),
		ChordType:               b.Quality.String(),
		Notes:                   b.Notes.Names(),
		MissingNotesBass:        missingIndices(missing, note.BassIndex),
		MissingNotesCounterbass: missingIndices(missing, note.CounterbassIndex),
		MissingNotesStr:         note.Names(missing),
		MissingCount:            len(missing),
	}
}

// fallback builds the record returned when no button is a subset of the
// target: the root's own bass buttons plus every chord note as missing.
func (r *Resolver) fallback(root string, pc note.PitchClass, ct chord.Type, target note.Set) model.ButtonCombination {
	spellings := note.Equivalents(root)
	bass := bassIndices(spellings)

	missing := target
	if r.shiftedFallback {
		missing = ct.Target(pc + 1)
	}

	return model.ButtonCombination{
		Bass:                    bass,
		BassNote:                spellings,
		Chord:                   append([]int(nil), bass...),
		Root:                    []string{root},
		RootIndex:               append([]int(nil), bass...),
		ChordType:               "",
		Color:                   r.palette[0],
		Notes:                   []string{},
		MissingNotesBass:        missingIndices(missing.PitchClasses(), note.BassIndex),
		MissingNotesCounterbass: missingIndices(missing.PitchClasses(), note.CounterbassIndex),
		MissingNotesStr:         target.Names(),
		MissingCount:            missing.Len(),
	}
}

func bassIndices(spellings []string) []int {
	res := make([]int, 0, len(spellings))
	for _, s := range spellings {
		res = append(res, note.BassIndex(s))
	}
	return util.Unique(util.FilterNegative(res))
}

// missingIndices names each pitch class, expands it to all its spellings
// and looks every spelling up in one row.
func missingIndices(pcs []note.PitchClass, lookup func(string) int) []int {
	var res []int
	for _, pc := range pcs {
		name := note.Name(pc)
		spellings := note.Equivalents(name)
		note.SortSpellings(spellings, name)
		for _, s := range spellings {
			res = append(res, lookup(s))
		}
	}
	return util.Unique(util.FilterNegative(res))
}

var defaultResolver = New()

// Resolve uses a resolver over the default catalog.
func Resolve(root string, t chord.Type) []model.ButtonCombination {
	return defaultResolver.Resolve(root, t)
}

func ResolveName(root string, name string) []model.ButtonCombination {
	return defaultResolver.ResolveName(root, name)
}
