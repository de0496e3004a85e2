package tui

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/tidwall/gjson"

	"gombr/pkg/mbr"
)

const maxColW = 24

// refreshAttrsFromCurrent rebuilds the table columns/rows from the currently selected path
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	if len(cols) == 0 || len(rows) == 0 {
		// leave table internals alone; SetColumns would re-render with stale rows
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		// every row must have exactly one cell per column
		cells := make([]string, len(tcols))
		cells[0] = strconv.Itoa(i + 1)
		copy(cells[1:], r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes inspects the current dataset and returns (columns, rows)
func (m *Model) buildAttributes() ([]string, [][]string) {
	p := m.selPath
	if p == "" {
		// pasted WKT: one row per feature box
		return boxRows(m.data.Boxes)
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".geojson", ".json":
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, nil
		}
		return geojsonAttrs(b)
	case ".csv":
		return csvAttrs(p)
	default:
		return boxRows(m.data.Boxes)
	}
}

// boxRows lists every feature box with its size.
func boxRows(boxes []mbr.MBR[float64]) ([]string, [][]string) {
	cols := []string{"minx", "miny", "maxx", "maxy", "area"}
	rows := make([][]string, 0, len(boxes))
	for _, b := range boxes {
		rows = append(rows, []string{coord(b.MinX), coord(b.MinY), coord(b.MaxX), coord(b.MaxY), coord(b.Area())})
	}
	return cols, rows
}

// geojsonAttrs collects properties across all features and unions the keys
// in first-seen order.
func geojsonAttrs(b []byte) ([]string, [][]string) {
	if !gjson.ValidBytes(b) {
		return nil, nil
	}
	root := gjson.ParseBytes(b)
	var features []gjson.Result
	switch root.Get("type").String() {
	case "FeatureCollection":
		features = root.Get("features").Array()
	case "Feature":
		features = []gjson.Result{root}
	default:
		return nil, nil
	}
	var order []string
	seen := map[string]bool{}
	props := make([]map[string]gjson.Result, 0, len(features))
	for _, f := range features {
		pm := map[string]gjson.Result{}
		f.Get("properties").ForEach(func(k, v gjson.Result) bool {
			key := k.String()
			pm[key] = v
			if !seen[key] {
				seen[key] = true
				order = append(order, key)
			}
			return true
		})
		props = append(props, pm)
	}
	rows := make([][]string, 0, len(props))
	for _, pm := range props {
		vals := make([]string, len(order))
		for i, k := range order {
			if v, ok := pm[k]; ok && v.Type != gjson.Null {
				vals[i] = v.String()
			}
		}
		rows = append(rows, vals)
	}
	return order, rows
}

// csvAttrs returns header as columns and each row as values
func csvAttrs(path string) ([]string, [][]string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil || len(recs) == 0 {
		return nil, nil
	}
	header := recs[0]
	rows := make([][]string, 0, len(recs)-1)
	for _, row := range recs[1:] {
		vals := make([]string, len(header))
		copy(vals, row)
		rows = append(rows, vals)
	}
	return header, rows
}
