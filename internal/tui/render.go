package tui

import (
	"math"
	"slices"
	"strings"

	"github.com/paulmach/orb"

	"gombr/pkg/mbr"
	"gombr/pkg/pt"
)

// frame is the data extent padded by 2% of its larger side, or by half a
// unit when the extent is a single point. Degenerate extents still project.
func (m Model) frame() mbr.MBR[float64] {
	f := m.data.Extent
	pad := 0.5
	if side := math.Max(f.Width(), f.Height()); side > 0 {
		pad = side * 0.02
	}
	f.ExpandByDelta(pad, pad)
	return f
}

// cellToLonLat converts a map cell coordinate back to lon/lat using the frame, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if m.data.Empty() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	f := m.frame()
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return f.MinX + nx*f.Width(), f.MinY + ny*f.Height(), true
}

// visibleExtent is the lon/lat rectangle currently covered by a w x h map.
func (m Model) visibleExtent(w, h int) (mbr.MBR[float64], bool) {
	x0, y0, ok0 := m.cellToLonLat(0, 0, w, h)
	x1, y1, ok1 := m.cellToLonLat(w-1, h-1, w, h)
	if !ok0 || !ok1 {
		return mbr.MBR[float64]{}, false
	}
	return mbr.FromPoints(pt.Pt[float64]{X: x0, Y: y0}, pt.Pt[float64]{X: x1, Y: y1}), true
}

// visibleBoxes counts the feature boxes touching the visible extent.
func (m Model) visibleBoxes(w, h int) int {
	view, ok := m.visibleExtent(w, h)
	if !ok {
		return 0
	}
	n := 0
	for _, b := range m.data.Boxes {
		if view.Intersects(b) {
			n++
		}
	}
	return n
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if m.data.Empty() {
		return 0, 0, false
	}
	f := m.frame()
	nx := (lon - f.MinX) / f.Width()
	ny := (lat - f.MinY) / f.Height()
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) projectRing(r orb.Ring, w, h int) [][2]int {
	out := make([][2]int, 0, len(r))
	for _, p := range r {
		if mx, my, ok := m.screenXYMicro(p[0], p[1], w, h); ok {
			out = append(out, [2]int{mx, my})
		}
	}
	return out
}

// fillRing fills a projected ring with the even-odd rule, one scanline per micro row.
func fillRing(br *brailleBuf, ring [][2]int) {
	hMic := br.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] {
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
}

func (m Model) renderAsciiMap(w, h int) string {
	br := newBrailleBuf(w, h)

	// polygons: outer ring filled, every ring outlined
	if m.showPolys {
		for _, poly := range m.data.Polygons {
			for i, ring := range poly {
				sm := m.projectRing(ring, w, h)
				if len(sm) < 3 {
					continue
				}
				if i == 0 {
					fillRing(br, sm)
				}
				br.drawPath(sm, true)
			}
		}
	}
	if m.showLines {
		for _, ls := range m.data.Lines {
			br.drawPath(m.projectRing(orb.Ring(ls), w, h), false)
		}
	}
	if m.showPoints {
		for _, p := range m.data.Points {
			if mx, my, ok := m.screenXYMicro(p[0], p[1], w, h); ok {
				br.setPixel(mx, my)
			}
		}
	}
	if m.showBoxes {
		for _, b := range m.data.Boxes {
			br.drawPath(m.projectRing(b.OrbRing(), w, h), true)
		}
	}
	// the inspected box is always outlined
	if m.selBox >= 0 && m.selBox < len(m.data.Boxes) {
		br.drawPath(m.projectRing(m.data.Boxes[m.selBox].OrbRing(), w, h), true)
	}

	lines := br.toLines()

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := hoverStyle.Render("◯")
				lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex returns the micro coordinates of the vertex closest to (hx, hy).
func (m Model) nearestVertex(hx, hy, w, h int) (int, int, bool) {
	best := math.MaxInt
	bx, by := hx, hy
	m.eachVertex(func(p orb.Point) {
		mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
		if !ok {
			return
		}
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	})
	return bx, by, best != math.MaxInt
}

func (m Model) eachVertex(fn func(orb.Point)) {
	for _, p := range m.data.Points {
		fn(p)
	}
	for _, ls := range m.data.Lines {
		for _, p := range ls {
			fn(p)
		}
	}
	for _, poly := range m.data.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				fn(p)
			}
		}
	}
}
