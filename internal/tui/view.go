package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" mbrview ─ bounding boxes in the terminal ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		// infer a reasonable width from columns
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderAsciiMap(mapWidth, mapHeight))
	}

	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		box := popupStyle.MaxWidth(max(20, min(64, contentWidth/2))).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, lipgloss.Height(box), lipgloss.Left, lipgloss.Top, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status and help on the left, cursor position and box count on the right
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+m.status+" "), m.renderHelp())
	info := ""
	if !m.data.Empty() {
		info = fmt.Sprintf("in view %d/%d", m.visibleBoxes(mapWidth, mapHeight), len(m.data.Boxes))
	}
	if m.hoverHasGeo {
		info = fmt.Sprintf("lon=%s lat=%s  %s", coord(m.hoverLon), coord(m.hoverLat), info)
	}
	coords := ""
	if info != "" {
		coords = dimStyle.Render("  " + info + "  ")
	}
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab files",
		"Enter open",
		"p paste",
		"a attrs",
		"i inspect",
		"b boxes",
		"1/2/3 pts/ls/poly",
		"l layers",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
