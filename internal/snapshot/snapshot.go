// Package snapshot loads the assembly snapshot document a CAD-side export
// macro writes: parts with authored poses, per-part named geometry, and
// optionally embedded joint sheets and mesh buffers.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/segmentio/encoding/json"

	"github.com/mjcad/mjcad/internal/assembly"
	"github.com/mjcad/mjcad/internal/sheet"
	"github.com/mjcad/mjcad/internal/spatial"
)

// Mesh is a triangle soup: nine vertex floats per triangle, optionally three
// per-face normal floats per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
}

// Triangles returns the triangle count.
func (m *Mesh) Triangles() int {
	return len(m.Vertices) / 9
}

type rawSnapshot struct {
	Assembly string     `json:"assembly"`
	Parts    []rawPart  `json:"parts"`
	Sheets   []rawSheet `json:"sheets"`
}

type rawPart struct {
	Label      string      `json:"label"`
	Source     string      `json:"source"`
	MeshFile   string      `json:"meshFile"`
	Position   []float64   `json:"position"`
	Quaternion []float64   `json:"quaternion"`
	Color      []float64   `json:"color"`
	Bounds     *rawBounds  `json:"bounds"`
	Objects    []rawObject `json:"objects"`
	Mesh       *Mesh       `json:"mesh"`
}

type rawBounds struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

type rawObject struct {
	Label      string    `json:"label"`
	Position   []float64 `json:"position"`
	Quaternion []float64 `json:"quaternion"`
}

type rawSheet struct {
	Label string    `json:"label"`
	Cells []rawCell `json:"cells"`
}

type rawCell struct {
	Address string `json:"address"`
	Content string `json:"content"`
}

// Snapshot is one loaded assembly document. It feeds the pipeline in three
// roles: part catalog source, geometry lookup for the frame resolver, and
// carrier of embedded joint sheets and mesh buffers. Snapshots are immutable
// after loading.
type Snapshot struct {
	Assembly string

	parts   []assembly.Part
	objects map[string]map[string]spatial.Placement
	sheets  map[string][]sheet.Cell
	meshes  map[string]*Mesh
}

// Load reads and parses the snapshot at path.
func Load(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a snapshot document. Poses are validated for shape only;
// orientations are taken as authored, without normalization.
func Parse(b []byte) (*Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	s := &Snapshot{
		Assembly: raw.Assembly,
		objects:  make(map[string]map[string]spatial.Placement),
		sheets:   make(map[string][]sheet.Cell),
		meshes:   make(map[string]*Mesh),
	}

	for i, rp := range raw.Parts {
		part, err := convertPart(i, rp)
		if err != nil {
			return nil, err
		}
		s.parts = append(s.parts, part)

		if len(rp.Objects) > 0 {
			doc := s.objects[part.Source]
			if doc == nil {
				doc = make(map[string]spatial.Placement)
				s.objects[part.Source] = doc
			}
			for _, ro := range rp.Objects {
				placement, err := convertObject(part.Label, ro)
				if err != nil {
					return nil, err
				}
				doc[ro.Label] = placement
			}
		}

		if rp.Mesh != nil {
			if err := validateMesh(part.Label, rp.Mesh); err != nil {
				return nil, err
			}
			if _, exists := s.meshes[part.MeshName]; !exists {
				s.meshes[part.MeshName] = rp.Mesh
			}
		}
	}

	for _, rs := range raw.Sheets {
		cells := make([]sheet.Cell, 0, len(rs.Cells))
		for _, rc := range rs.Cells {
			addr, err := sheet.ParseAddress(rc.Address)
			if err != nil {
				return nil, fmt.Errorf("sheet %q: %w", rs.Label, err)
			}
			cells = append(cells, sheet.Cell{Address: addr, Content: rc.Content})
		}
		s.sheets[rs.Label] = cells
	}

	return s, nil
}

// Catalog builds the part catalog.
func (s *Snapshot) Catalog() (*assembly.Catalog, error) {
	return assembly.NewCatalog(s.parts)
}

// Object looks up a named object in a source document. Snapshot satisfies
// the frame resolver's geometry source this way.
func (s *Snapshot) Object(source, label string) (spatial.Placement, bool) {
	p, ok := s.objects[source][label]
	return p, ok
}

// Sheet returns the cells of an embedded joint sheet.
func (s *Snapshot) Sheet(label string) ([]sheet.Cell, bool) {
	cells, ok := s.sheets[label]
	return cells, ok
}

// Mesh returns the mesh buffer exported under the asset name.
func (s *Snapshot) Mesh(name string) (*Mesh, bool) {
	m, ok := s.meshes[name]
	return m, ok
}

func convertPart(index int, rp rawPart) (assembly.Part, error) {
	if rp.Label == "" {
		return assembly.Part{}, fmt.Errorf("part %d has no label", index)
	}

	pos, err := vec3(rp.Position)
	if err != nil {
		return assembly.Part{}, fmt.Errorf("part %q: position: %w", rp.Label, err)
	}
	quat, err := quaternion(rp.Quaternion)
	if err != nil {
		return assembly.Part{}, fmt.Errorf("part %q: quaternion: %w", rp.Label, err)
	}
	color, err := color(rp.Color)
	if err != nil {
		return assembly.Part{}, fmt.Errorf("part %q: color: %w", rp.Label, err)
	}

	part := assembly.Part{
		Label:       rp.Label,
		Source:      rp.Source,
		MeshName:    meshName(rp),
		Position:    pos,
		Orientation: quat,
		Color:       color,
	}
	if part.Source == "" {
		part.Source = rp.Label
	}

	if rp.Bounds != nil {
		bmin, err := vec3(rp.Bounds.Min)
		if err != nil {
			return assembly.Part{}, fmt.Errorf("part %q: bounds min: %w", rp.Label, err)
		}
		bmax, err := vec3(rp.Bounds.Max)
		if err != nil {
			return assembly.Part{}, fmt.Errorf("part %q: bounds max: %w", rp.Label, err)
		}
		part.Bounds = spatial.Box3{Min: bmin, Max: bmax}
	} else {
		part.Bounds = spatial.EmptyBox3()
	}

	return part, nil
}

func convertObject(partLabel string, ro rawObject) (spatial.Placement, error) {
	if ro.Label == "" {
		return spatial.Placement{}, fmt.Errorf("part %q: object without a label", partLabel)
	}
	placement := spatial.Placement{Orientation: spatial.Identity()}
	if ro.Position != nil {
		pos, err := vec3(ro.Position)
		if err != nil {
			return spatial.Placement{}, fmt.Errorf("part %q: object %q: position: %w", partLabel, ro.Label, err)
		}
		placement.Position = pos
	}
	if ro.Quaternion != nil {
		quat, err := quaternion(ro.Quaternion)
		if err != nil {
			return spatial.Placement{}, fmt.Errorf("part %q: object %q: quaternion: %w", partLabel, ro.Label, err)
		}
		placement.Orientation = quat
	}
	return placement, nil
}

// meshName derives the asset name from the exported file's base name, or
// falls back to the part label for exporters that wrote one mesh per part.
func meshName(rp rawPart) string {
	if rp.MeshFile == "" {
		return rp.Label
	}
	base := filepath.Base(rp.MeshFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func validateMesh(partLabel string, m *Mesh) error {
	if len(m.Vertices) == 0 || len(m.Vertices)%9 != 0 {
		return fmt.Errorf("part %q: mesh needs nine vertex floats per triangle, got %d", partLabel, len(m.Vertices))
	}
	if len(m.Normals) != 0 && len(m.Normals) != m.Triangles()*3 {
		return fmt.Errorf("part %q: mesh has %d triangles but %d normal floats", partLabel, m.Triangles(), len(m.Normals))
	}
	return nil
}

func vec3(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("need 3 components, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// quaternion reads the source convention: vector part first, scalar last.
func quaternion(v []float64) (spatial.Quaternion, error) {
	if len(v) != 4 {
		return spatial.Quaternion{}, fmt.Errorf("need 4 components, got %d", len(v))
	}
	return spatial.Quaternion{X: v[0], Y: v[1], Z: v[2], W: v[3]}, nil
}

// color accepts RGB or RGBA; a missing fourth channel means no transparency.
func color(v []float64) (assembly.Color, error) {
	switch len(v) {
	case 3:
		return assembly.Color{v[0], v[1], v[2], 0}, nil
	case 4:
		return assembly.Color{v[0], v[1], v[2], v[3]}, nil
	default:
		return assembly.Color{}, fmt.Errorf("need 3 or 4 components, got %d", len(v))
	}
}
