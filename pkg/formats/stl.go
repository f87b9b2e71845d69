// STL (stereolithography) mesh parser, binary and ASCII variants.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// STL format errors.
var (
	ErrTruncatedSTL = errors.New("truncated STL data")
	ErrInvalidSTL   = errors.New("invalid STL data")
)

const (
	stlHeaderSize = 80
	stlFacetSize  = 50 // normal + 3 vertices + attribute count

	// MaxSTLFacets bounds the facet count accepted from a binary header.
	MaxSTLFacets = 50_000_000
)

// STLFacet is one triangle with its stored normal. The stored normal is
// informational; many exporters write zeros.
type STLFacet struct {
	Normal    math.Vec3
	Vertices  [3]math.Vec3
	Attribute uint16 // binary only
}

// STL is a parsed STL file.
type STL struct {
	Name   string // ASCII solid name or trimmed binary header
	Binary bool
	Facets []STLFacet
}

// Triangles returns the vertex triples of every facet.
func (s *STL) Triangles() [][3]math.Vec3 {
	tris := make([][3]math.Vec3, len(s.Facets))
	for i, f := range s.Facets {
		tris[i] = f.Vertices
	}
	return tris
}

// ParseSTL parses binary or ASCII STL data. Binary files whose header
// happens to start with "solid" are recognized by their exact size.
func ParseSTL(data []byte) (*STL, error) {
	if isBinarySTL(data) {
		return parseBinarySTL(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCIISTL(data)
	}
	return parseBinarySTL(data)
}

// ParseSTLFile parses an STL file from disk.
func ParseSTLFile(path string) (*STL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return ParseSTL(data)
}

func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return uint64(len(data)) == stlHeaderSize+4+uint64(count)*stlFacetSize
}

func parseBinarySTL(data []byte) (*STL, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, ErrTruncatedSTL
	}

	r := bytes.NewReader(data)

	header := make([]byte, stlHeaderSize)
	if _, err := r.Read(header); err != nil {
		return nil, ErrTruncatedSTL
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, ErrTruncatedSTL
	}
	if count > MaxSTLFacets {
		return nil, fmt.Errorf("%w: facet count %d", ErrInvalidSTL, count)
	}
	if uint64(r.Len()) < uint64(count)*stlFacetSize {
		return nil, fmt.Errorf("%w: %d facets need %d bytes, have %d",
			ErrTruncatedSTL, count, uint64(count)*stlFacetSize, r.Len())
	}

	stl := &STL{
		Name:   strings.TrimRight(string(bytes.TrimRight(header, "\x00")), " "),
		Binary: true,
		Facets: make([]STLFacet, count),
	}

	var raw struct {
		Normal    [3]float32
		Vertices  [3][3]float32
		Attribute uint16
	}
	for i := range stl.Facets {
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("%w: facet %d", ErrTruncatedSTL, i)
		}
		f := &stl.Facets[i]
		f.Normal = math.Vec3FromArray(raw.Normal)
		for j := range raw.Vertices {
			f.Vertices[j] = math.Vec3FromArray(raw.Vertices[j])
		}
		f.Attribute = raw.Attribute
	}

	return stl, nil
}

// parseASCIISTL reads the keyword grammar
//
//	solid name
//	  facet normal nx ny nz
//	    outer loop
//	      vertex x y z   (three times)
//	    endloop
//	  endfacet
//	endsolid name
func parseASCIISTL(data []byte) (*STL, error) {
	stl := &STL{}
	sc := bufio.NewScanner(bytes.NewReader(data))

	var (
		facet    STLFacet
		inFacet  bool
		vertices int
		ended    bool
		line     int
	)

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			stl.Name = strings.Join(fields[1:], " ")
		case "facet":
			if inFacet {
				return nil, fmt.Errorf("%w: line %d: nested facet", ErrInvalidSTL, line)
			}
			facet = STLFacet{}
			if len(fields) == 5 && fields[1] == "normal" {
				n, err := parseVec3(fields[2:])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidSTL, line, err)
				}
				facet.Normal = n
			}
			inFacet = true
			vertices = 0
		case "outer", "endloop":
		case "vertex":
			if !inFacet || vertices >= 3 || len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: unexpected vertex", ErrInvalidSTL, line)
			}
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidSTL, line, err)
			}
			facet.Vertices[vertices] = v
			vertices++
		case "endfacet":
			if !inFacet || vertices != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrInvalidSTL, line, vertices)
			}
			stl.Facets = append(stl.Facets, facet)
			inFacet = false
		case "endsolid":
			ended = true
		default:
			return nil, fmt.Errorf("%w: line %d: unknown keyword %q", ErrInvalidSTL, line, fields[0])
		}
		if ended {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSTL, err)
	}
	if inFacet || !ended {
		return nil, ErrTruncatedSTL
	}

	return stl, nil
}

func parseVec3(fields []string) (math.Vec3, error) {
	var a [3]float32
	for i, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math.Vec3{}, err
		}
		a[i] = float32(v)
	}
	return math.Vec3FromArray(a), nil
}
