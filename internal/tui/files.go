package tui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"gombr/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the loadable files of cwd, sorted by name.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(geom.Exts, ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	// ReadDir already sorts by name
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in " + m.cwd
	}
}

// loadPath loads p into the model, leaving the current data in place on error.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + counts(len(d.Points), len(d.Lines), len(d.Polygons), len(d.Boxes))
	// If attributes are currently shown, verify availability for the new dataset
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}
