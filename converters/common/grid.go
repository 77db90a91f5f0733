package common

// UsedRange trims leading and trailing empty rows and columns from rows and pads
// every remaining row with empty cells to a common width.
func UsedRange(rows [][]string) [][]string {
	firstRow, lastRow := -1, -1
	firstCol, lastCol := -1, -1

	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if firstRow == -1 {
				firstRow = r
			}
			lastRow = r
			if firstCol == -1 || c < firstCol {
				firstCol = c
			}
			if c > lastCol {
				lastCol = c
			}
		}
	}
	if firstRow == -1 {
		return nil
	}

	width := lastCol - firstCol + 1
	rng := make([][]string, 0, lastRow-firstRow+1)
	for _, row := range rows[firstRow : lastRow+1] {
		out := make([]string, width)
		if firstCol < len(row) {
			copy(out, row[firstCol:])
		}
		rng = append(rng, out)
	}
	return rng
}
