package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// makeBinarySTL builds a binary STL with the given header text and
// facets.
func makeBinarySTL(header string, facets [][3][3]float32) []byte {
	buf := new(bytes.Buffer)
	h := make([]byte, stlHeaderSize)
	copy(h, header)
	buf.Write(h)
	binary.Write(buf, binary.LittleEndian, uint32(len(facets)))
	for _, f := range facets {
		binary.Write(buf, binary.LittleEndian, [3]float32{0, 0, 1})
		binary.Write(buf, binary.LittleEndian, f)
		binary.Write(buf, binary.LittleEndian, uint16(7))
	}
	return buf.Bytes()
}

var twoFacets = [][3][3]float32{
	{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
}

const asciiSquare = `solid square
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 1 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid square
`

func TestParseSTL_Binary(t *testing.T) {
	stl, err := ParseSTL(makeBinarySTL("exported by test", twoFacets))
	if err != nil {
		t.Fatalf("ParseSTL: %v", err)
	}

	if !stl.Binary {
		t.Error("expected binary STL")
	}
	if stl.Name != "exported by test" {
		t.Errorf("name = %q", stl.Name)
	}
	if len(stl.Facets) != 2 {
		t.Fatalf("expected 2 facets, got %d", len(stl.Facets))
	}

	f := stl.Facets[1]
	if f.Vertices[1] != (math.Vec3{X: 1, Y: 1}) {
		t.Errorf("vertex = %v", f.Vertices[1])
	}
	if f.Normal != (math.Vec3{Z: 1}) {
		t.Errorf("normal = %v", f.Normal)
	}
	if f.Attribute != 7 {
		t.Errorf("attribute = %d", f.Attribute)
	}
}

// Some exporters write "solid" into the binary header.
func TestParseSTL_BinaryWithSolidHeader(t *testing.T) {
	stl, err := ParseSTL(makeBinarySTL("solid cube", twoFacets))
	if err != nil {
		t.Fatalf("ParseSTL: %v", err)
	}
	if !stl.Binary || len(stl.Facets) != 2 {
		t.Errorf("binary=%v facets=%d", stl.Binary, len(stl.Facets))
	}
}

func TestParseSTL_ASCII(t *testing.T) {
	stl, err := ParseSTL([]byte(asciiSquare))
	if err != nil {
		t.Fatalf("ParseSTL: %v", err)
	}

	if stl.Binary {
		t.Error("expected ASCII STL")
	}
	if stl.Name != "square" {
		t.Errorf("name = %q", stl.Name)
	}
	tris := stl.Triangles()
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
	want := [3]math.Vec3{{X: 1}, {X: 1, Y: 1}, {Y: 1}}
	if tris[1] != want {
		t.Errorf("triangle = %v, want %v", tris[1], want)
	}
}

func TestParseSTL_Errors(t *testing.T) {
	truncated := makeBinarySTL("x", twoFacets)
	truncated = truncated[:len(truncated)-10]

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", []byte{}, ErrTruncatedSTL},
		{"short header", make([]byte, 40), ErrTruncatedSTL},
		{"truncated facets", truncated, ErrTruncatedSTL},
		{"ascii missing endsolid", []byte("solid a\nfacet normal 0 0 1\nouter loop\n"), ErrTruncatedSTL},
		{"ascii two vertices", []byte("solid a\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid\n"), ErrInvalidSTL},
		{"ascii bad number", []byte("solid a\nfacet normal 0 0 1\nouter loop\nvertex 0 x 0\n"), ErrInvalidSTL},
		{"ascii unknown keyword", []byte("solid a\nbogus\nendsolid\n"), ErrInvalidSTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSTL(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseSTLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.stl")
	if err := os.WriteFile(path, []byte(asciiSquare), 0o644); err != nil {
		t.Fatal(err)
	}

	stl, err := ParseSTLFile(path)
	if err != nil {
		t.Fatalf("ParseSTLFile: %v", err)
	}
	if len(stl.Facets) != 2 {
		t.Errorf("expected 2 facets, got %d", len(stl.Facets))
	}

	if _, err := ParseSTLFile(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("expected error for missing file")
	}
}
