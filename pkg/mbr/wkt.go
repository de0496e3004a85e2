package mbr

import (
	"strconv"
	"strings"

	"gombr/pkg/mutil"
)

// WKT returns m as a closed POLYGON ring, e.g.
// "POLYGON ((0 0, 0 2, 2 2, 2 0, 0 0))".
func (m MBR[T]) WKT() string {
	var sb strings.Builder
	sb.WriteString("POLYGON ((")
	for i, p := range m.PolygonRing() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatCoord(float64(p.X)))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(float64(p.Y)))
	}
	sb.WriteString("))")
	return sb.String()
}

func (m MBR[T]) String() string { return m.WKT() }

// formatCoord prints f with mutil.Precision decimals, dropping trailing
// zeros and a dangling decimal point.
func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', mutil.Precision, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
