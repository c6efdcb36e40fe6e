// Package palette allocates stable material names for part colors.
package palette

import (
	"fmt"
	"sort"

	"github.com/mjcad/mjcad/internal/assembly"
)

// Entry is one allocated material: its name and the color it renders with.
// The entry's alpha is inverted relative to the CAD source; CAD documents
// store transparency where the scene format wants opacity.
type Entry struct {
	Name  string
	Color assembly.Color
}

// Palette maps part colors to material names. Allocation is deterministic:
// the same set of colors yields the same names no matter what order the
// parts arrive in.
type Palette struct {
	names   map[assembly.Color]string
	entries []Entry
}

// Build allocates a palette over the distinct part colors. Names run
// color_0, color_1, ... in lexicographic order of the inverted channel
// values.
func Build(parts []assembly.Part) *Palette {
	distinct := make(map[assembly.Color]bool, len(parts))
	for _, part := range parts {
		distinct[part.Color] = true
	}

	inverted := make([]assembly.Color, 0, len(distinct))
	for c := range distinct {
		inverted = append(inverted, invertAlpha(c))
	}
	sort.Slice(inverted, func(i, j int) bool { return less(inverted[i], inverted[j]) })

	p := &Palette{names: make(map[assembly.Color]string, len(inverted))}
	for i, c := range inverted {
		name := fmt.Sprintf("color_%d", i)
		p.names[invertAlpha(c)] = name // inversion is its own inverse; key by source color
		p.entries = append(p.entries, Entry{Name: name, Color: c})
	}
	return p
}

// Name returns the material allocated for a part's source color.
func (p *Palette) Name(c assembly.Color) (string, bool) {
	n, ok := p.names[c]
	return n, ok
}

// Entries returns the materials in allocation order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Len returns the number of allocated materials.
func (p *Palette) Len() int {
	return len(p.entries)
}

func invertAlpha(c assembly.Color) assembly.Color {
	c[3] = 1 - c[3]
	return c
}

func less(a, b assembly.Color) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
