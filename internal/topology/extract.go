package topology

import (
	"strings"

	"github.com/mjcad/mjcad/internal/document"
	"github.com/mjcad/mjcad/internal/sheet"
)

// Fixed column layout of a joint sheet.
const (
	columnLabel = "A"
	columnRole  = "B"
	columnKey   = "C"
	columnValue = "D"
)

const (
	roleParent = "parent"
	roleChild  = "child"
)

// Field is one key/value pair read from a C/D row.
type Field struct {
	Key   string
	Value string
}

// Fields is the ordered field list of one role block.
type Fields []Field

// Get returns the first field with the key.
func (f Fields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Record is the flat form of one joint label's sheet rows: the parent
// block's fields and each child block's fields, in row order.
type Record struct {
	Label    string
	Parent   Fields
	Children []Fields
}

// ExtractSheet reads joint records out of a sparse grid.
//
// Each column-A cell opens a record whose rows run from just below the label
// to just above the next label (or to the last occupied row). Within a
// record, column-B cells open role blocks the same way, and each block's
// C/D rows become its fields. Role tags other than parent/child are skipped
// together with their blocks, mirroring the source tool's permissiveness.
func ExtractSheet(g *sheet.Grid) ([]Record, error) {
	labels := g.Column(columnLabel)
	records := make([]Record, 0, len(labels))
	for i, lc := range labels {
		lo := lc.Address.Row + 1
		hi := g.MaxRow()
		if i+1 < len(labels) {
			hi = labels[i+1].Address.Row - 1
		}
		rec, err := extractRecord(g, lc.Content, lo, hi)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func extractRecord(g *sheet.Grid, label string, lo, hi int) (Record, error) {
	rec := Record{Label: label}
	roles := g.ColumnRange(columnRole, lo, hi)
	for j, rc := range roles {
		role := strings.ToLower(strings.TrimSpace(rc.Content))
		if role != roleParent && role != roleChild {
			continue
		}

		blockLo := rc.Address.Row + 1
		blockHi := hi
		if j+1 < len(roles) {
			blockHi = roles[j+1].Address.Row - 1
		}
		fields, err := extractFields(g, blockLo, blockHi)
		if err != nil {
			return Record{}, err
		}
		if role == roleParent {
			rec.Parent = fields
		} else {
			rec.Children = append(rec.Children, fields)
		}
	}
	return rec, nil
}

func extractFields(g *sheet.Grid, lo, hi int) (Fields, error) {
	values := make(map[int]string)
	for _, vc := range g.ColumnRange(columnValue, lo, hi) {
		values[vc.Address.Row] = vc.Content
	}

	var fields Fields
	for _, kc := range g.ColumnRange(columnKey, lo, hi) {
		v, ok := values[kc.Address.Row]
		if !ok {
			return nil, &document.MalformedTopologyError{
				Address: kc.Address.String(),
				Detail:  "field key has no value in the same row",
			}
		}
		fields = append(fields, Field{Key: kc.Content, Value: v})
	}
	return fields, nil
}
