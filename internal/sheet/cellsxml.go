// internal/sheet/cellsxml.go
package sheet

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/mjcad/mjcad/internal/document"
)

// ReadCellsXML reads a FreeCAD spreadsheet cell payload, the XML fragment the
// CAD side stores under a sheet's Content property:
//
//	<Cells Count="3">
//	  <Cell address="A2" content="J1" />
//	  ...
//	</Cells>
//
// Cells appear in document order. Anything that is not a well-addressed cell
// is a topology defect.
func ReadCellsXML(r io.Reader) ([]Cell, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing cells XML: %w", err)
	}

	var cells []Cell
	for _, el := range doc.FindElements("//Cell") {
		raw := el.SelectAttr("address")
		if raw == nil {
			return nil, &document.MalformedTopologyError{Detail: "cell element without an address attribute"}
		}
		addr, err := ParseAddress(raw.Value)
		if err != nil {
			return nil, err
		}
		cells = append(cells, Cell{Address: addr, Content: el.SelectAttrValue("content", "")})
	}
	return cells, nil
}
