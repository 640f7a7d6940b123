// Package layout generates parametric venue maps: cinema halls with curved
// rows, restaurant floors, and conference rooms. Generators only place items;
// reservations against the result are the engine's concern.
package layout

import "strconv"

const defaultRowLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// rowLabel returns the letter for a row index, falling back to the 1-based
// row number once the label alphabet runs out.
func rowLabel(labels string, index int) string {
	if index < len(labels) {
		return string(labels[index])
	}

	return strconv.Itoa(index + 1)
}
