// internal/sheet/cellsxml_test.go
package sheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjcad/mjcad/internal/document"
)

const sampleCellsXML = `<?xml version="1.0" encoding="utf-8"?>
<Cells Count="5" xlink="1">
  <XLinks count="0"></XLinks>
  <Cell address="A2" content="J1" />
  <Cell address="B3" content="parent" />
  <Cell address="C3" content="body" />
  <Cell address="D3" content="base" />
  <Cell address="B5" content="child" />
</Cells>`

func TestReadCellsXML(t *testing.T) {
	cells, err := ReadCellsXML(strings.NewReader(sampleCellsXML))
	require.NoError(t, err)
	require.Len(t, cells, 5)

	assert.Equal(t, Address{Column: "A", Row: 2}, cells[0].Address)
	assert.Equal(t, "J1", cells[0].Content)
	assert.Equal(t, Address{Column: "D", Row: 3}, cells[3].Address)
	assert.Equal(t, "base", cells[3].Content)
}

func TestReadCellsXMLBadAddress(t *testing.T) {
	_, err := ReadCellsXML(strings.NewReader(`<Cells><Cell address="nope" content="x"/></Cells>`))
	require.Error(t, err)

	var topoErr *document.MalformedTopologyError
	require.True(t, errors.As(err, &topoErr))
	assert.Equal(t, "nope", topoErr.Address)
}

func TestReadCellsXMLMissingAddress(t *testing.T) {
	_, err := ReadCellsXML(strings.NewReader(`<Cells><Cell content="x"/></Cells>`))
	require.Error(t, err)

	var topoErr *document.MalformedTopologyError
	assert.True(t, errors.As(err, &topoErr))
}

func TestReadCellsXMLMalformed(t *testing.T) {
	_, err := ReadCellsXML(strings.NewReader(`<Cells><Cell`))
	assert.Error(t, err)
}
