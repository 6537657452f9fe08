package grid

// GetGridCoords converts a linear cell index into (column, row) for a grid
// that is cols wide.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Wrap splits line into chunks of at most cols runes. An empty line yields
// one empty row.
func Wrap(line string, cols int) []string {
	runes := []rune(line)
	if len(runes) == 0 || cols <= 0 {
		return []string{line}
	}
	rows := make([]string, 0, (len(runes)+cols-1)/cols)
	for start := 0; start < len(runes); start += cols {
		end := start + cols
		if end > len(runes) {
			end = len(runes)
		}
		rows = append(rows, string(runes[start:end]))
	}
	return rows
}
