package note

// Columns is the number of columns in the Stradella system.
const Columns = 20

// Bass row, circle of fifths starting at Bbb.
var bassRow = [Columns]string{
	"Bbb", "Fb", "Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C",
	"G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#",
}

// Counterbass row. Each column sits a major third above the bass column.
var counterbassRow = [Columns]string{
	"Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E",
	"B", "F#", "C#", "G#", "D#", "A#", "E#", "B#", "Fx", "Cx",
}

var (
	bassColumns        = indexRow(bassRow)
	counterbassColumns = indexRow(counterbassRow)
)

func indexRow(row [Columns]string) map[string]int {
	res := make(map[string]int, Columns)
	for i, n := range row {
		res[n] = i
	}
	return res
}

// BassIndex returns the bass row column of a spelling, or -1.
func BassIndex(name string) int {
	if i, ok := bassColumns[name]; ok {
		return i
	}
	return -1
}

// CounterbassIndex returns the counterbass row column of a spelling, or -1.
func CounterbassIndex(name string) int {
	if i, ok := counterbassColumns[name]; ok {
		return i
	}
	return -1
}

func BassName(col int) string {
	return bassRow[col]
}

func CounterbassName(col int) string {
	return counterbassRow[col]
}

func BassRow() []string {
	return append([]string(nil), bassRow[:]...)
}

func CounterbassRow() []string {
	return append([]string(nil), counterbassRow[:]...)
}
