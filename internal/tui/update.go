package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gombr/internal/geom"
	"gombr/pkg/pt"
)

const (
	headerHeight = 1
	footerHeight = 2
)

// layout returns the map origin and size for the current window; View and
// mouse handling must agree on it.
func (m Model) layout() (x, y, w, h int) {
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		x = sidebarWidth + 1
	}
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, max(10, m.width)-side-1)
	return x, headerHeight, w, h
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, m.mapW, m.mapH = m.layout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.mapH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "b":
			m.showBoxes = !m.showBoxes
			m.status = fmt.Sprintf("boxes: %v", m.showBoxes)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			_, _, m.mapW, m.mapH = m.layout()
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.mapH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
			m.selBox = -1
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys && m.showBoxes
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.showBoxes = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v boxes=%v", m.showPoints, m.showLines, m.showPolys, m.showBoxes)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.layout()
		cx, cy := msg.X-ox, msg.Y-oy
		if cx < 0 || cx >= w || cy < 0 || cy >= h {
			m.hovering = false
			break
		}
		m.hovering = true
		if lon, lat, ok := m.cellToLonLat(cx, cy, w, h); ok {
			m.hoverHasGeo = true
			m.hoverLon, m.hoverLat = lon, lat
		} else {
			m.hoverHasGeo = false
		}
		if bx, by, ok := m.nearestVertex(cx*2, cy*4, w, h); ok {
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKTData(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d)
		m.status = "rendered WKT  " + counts(len(d.Points), len(d.Lines), len(d.Polygons), len(d.Boxes))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// inspect selects the box nearest the viewport center and fills the popup.
func (m *Model) inspect() {
	w, h := m.mapW, m.mapH
	if w <= 0 || h <= 0 {
		_, _, w, h = m.layout()
	}
	lon, lat, ok := m.cellToLonLat(w/2, h/2, w, h)
	if !ok {
		m.inspectPopup = "nothing loaded"
		m.status = m.inspectPopup
		return
	}
	idx, ok := nearestBox(m.data.Boxes, pt.Pt[float64]{X: lon, Y: lat})
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	lines := append([]string{"name: " + name}, describeBox(m.data, idx)...)
	m.selBox = idx
	m.inspectPopup = strings.Join(lines, "\n")
	m.status = fmt.Sprintf("inspect: box %d", idx+1)
}
