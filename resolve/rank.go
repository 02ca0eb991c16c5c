package resolve

import (
	"sort"

	"github.com/jsphweid/stradella/model"
)

// Palette colors results in ranked order, wrapping around.
var Palette = []string{
	"#4A90E2",
	"#50C878",
	"#9B59B6",
	"#E74C3C",
	"#F39C12",
	"#1ABC9C",
	"#34495E",
	"#7F8C8D",
}

// RankSort puts combinations built on the requested root first, then
// orders by fewest missing notes. Equal entries keep their order.
func RankSort(combos []model.ButtonCombination) {
	sort.SliceStable(combos, func(i, j int) bool {
		a, b := combos[i].RootIsBass(), combos[j].RootIsBass()
		if a != b {
			return a
		}
		return combos[i].MissingCount < combos[j].MissingCount
	})
}

func AssignColors(combos []model.ButtonCombination, palette []string) {
	for i := range combos {
		combos[i].Color = palette[i%len(palette)]
	}
}
