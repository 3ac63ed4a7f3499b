package terminal

// 3x5 點陣數字，用來畫比分
var glyphs = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
}

const (
	glyphWidth  = 3
	glyphHeight = 5
)

// getCellsFromChar returns the lit cells of a glyph as (col, row) offsets.
func getCellsFromChar(ch rune) ([][2]int, bool) {
	rows, ok := glyphs[ch]
	if !ok {
		return nil, false
	}
	var cells [][2]int
	for r, line := range rows {
		for c, dot := range line {
			if dot == '#' {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells, true
}

func hasGlyphs(word string) bool {
	if word == "" {
		return false
	}
	for _, ch := range word {
		if _, ok := glyphs[ch]; !ok {
			return false
		}
	}
	return true
}
