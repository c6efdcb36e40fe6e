// Package stl writes snapshot mesh buffers as binary STL, the format the
// scene's mesh assets reference.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mjcad/mjcad/internal/snapshot"
)

// FileName returns the file name a mesh asset name maps to.
func FileName(name string) string {
	return name + ".stl"
}

// Write serializes the mesh as binary STL: an 80-byte header, a uint32
// triangle count, then 50 bytes per triangle, all little-endian. Exported
// per-face normals are used as-is; missing ones are computed from the
// winding.
func Write(w io.Writer, m *snapshot.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "mjcad binary stl")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	tris := m.Triangles()
	if err := binary.Write(bw, binary.LittleEndian, uint32(tris)); err != nil {
		return err
	}

	record := make([]float32, 12)
	for i := 0; i < tris; i++ {
		v := m.Vertices[i*9 : i*9+9]
		if len(m.Normals) > 0 {
			copy(record[:3], m.Normals[i*3:i*3+3])
		} else {
			n := faceNormal(v)
			copy(record[:3], n[:])
		}
		copy(record[3:], v)
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the mesh to path.
func WriteFile(path string, m *snapshot.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh file: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing mesh file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing mesh file %s: %w", path, err)
	}
	return nil
}

// faceNormal is the normalized cross product of the triangle's edges,
// right-hand winding. Degenerate triangles get a zero normal.
func faceNormal(v []float32) [3]float32 {
	ax, ay, az := float64(v[3]-v[0]), float64(v[4]-v[1]), float64(v[5]-v[2])
	bx, by, bz := float64(v[6]-v[0]), float64(v[7]-v[1]), float64(v[8]-v[2])

	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx

	norm := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if norm == 0 {
		return [3]float32{}
	}
	return [3]float32{float32(nx / norm), float32(ny / norm), float32(nz / norm)}
}
