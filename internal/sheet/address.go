// internal/sheet/address.go
package sheet

import (
	"regexp"
	"strconv"

	"github.com/mjcad/mjcad/internal/document"
)

// addressRegex parses a spreadsheet cell address, e.g. `A2` or `AB14`.
// Row numbering starts at 1.
var addressRegex = regexp.MustCompile(`^([A-Z]+)([1-9][0-9]*)$`)

// Address identifies one cell: an upper-case column name and a 1-based row.
type Address struct {
	Column string
	Row    int
}

// ParseAddress creates an Address from its canonical string form. Anything
// that is not an upper-case column followed by a positive row is a topology
// defect, since addresses only ever reach us from joint spreadsheets.
func ParseAddress(raw string) (Address, error) {
	matches := addressRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Address{}, &document.MalformedTopologyError{
			Address: raw,
			Detail:  "not a cell address",
		}
	}

	row, err := strconv.Atoi(matches[2])
	if err != nil {
		// Unreachable due to regex `[0-9]+`
		return Address{}, &document.MalformedTopologyError{Address: raw, Detail: "row is not a number"}
	}

	return Address{Column: matches[1], Row: row}, nil
}

// String returns the canonical form, e.g. `B7`.
func (a Address) String() string {
	return a.Column + strconv.Itoa(a.Row)
}
