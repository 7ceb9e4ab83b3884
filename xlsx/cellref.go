package xlsx

import "strconv"

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA"
func ColToName(col int) string {
	result := ""
	col++ // convert to 1-based for algorithm
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// CellName returns the A1-style name of a 0-based row and column.
func CellName(row, col int) string {
	return ColToName(col) + strconv.Itoa(row+1)
}
