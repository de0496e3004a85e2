package tui

import (
	"fmt"
	"strconv"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// coord formats a lon/lat value for status lines and popups.
func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', 5, 64)
}

func counts(pts, lines, polys, boxes int) string {
	return fmt.Sprintf("counts: pts=%d ls=%d poly=%d boxes=%d", pts, lines, polys, boxes)
}
