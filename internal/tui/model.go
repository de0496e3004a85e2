package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gombr/internal/config"
	"gombr/internal/geom"
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data, one bounding box per feature
	data geom.Data

	// map size from the last WindowSizeMsg
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool
	showBoxes  bool

	// inspect popup and the box it describes (-1 for none)
	inspectPopup string
	selBox       int

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(cfg config.Config) Model {
	m := Model{
		helpVisible: true,
		zoom:        cfg.Zoom,
		status:      "mbrview ready",
		cwd:         cfg.Dir,
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		showBoxes:   cfg.ShowBoxes,
		selBox:      -1,
	}
	if m.zoom <= 0 {
		m.zoom = 1.0
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns will be inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads data at launch. Several paths are overlaid into one
// dataset.
func NewWithPath(cfg config.Config, paths ...string) Model {
	m := New(cfg)
	if len(paths) == 1 {
		m.loadPath(paths[0])
		return m
	}
	d, err := geom.LoadAll(paths...)
	if err != nil {
		m.status = "load error: " + err.Error()
		return m
	}
	m.setData(d)
	m.status = fmt.Sprintf("loaded %d files  %s", len(paths), counts(len(d.Points), len(d.Lines), len(d.Polygons), len(d.Boxes)))
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setData replaces the dataset and resets the pan offset.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.offsetX, m.offsetY = 0, 0
	m.showPoints = len(d.Points) > 0
	m.showLines = len(d.Lines) > 0
	m.showPolys = len(d.Polygons) > 0
	m.inspectPopup = ""
	m.selBox = -1
}
