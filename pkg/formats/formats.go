// Package formats provides parsers for the mesh file formats the
// playground can load.
//
// STL (stereolithography) is supported in both encodings:
//   - binary: 80 byte header, little-endian facet count, 50 bytes per facet
//   - ASCII: "solid" ... "facet normal" / "outer loop" / "vertex" ... "endsolid"
package formats
