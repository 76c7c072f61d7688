package vecpath

import "math"

// Index is the integer type used for vertex offsets.
type Index = uint32

// VertexID is a virtual vertex offset in a geometry.
//
// vecpath only defines this type for shared use; it never allocates or
// interprets VertexID values itself. IDs are only meaningful between the
// begin-geometry and end-geometry calls of a downstream geometry builder,
// which typically translates them so that the first ID after begin-geometry
// is zero.
//
// A VertexID encodes as a plain JSON number.
type VertexID uint32

// InvalidVertexID is a sentinel that never refers to a real vertex.
const InvalidVertexID = VertexID(math.MaxUint32)

// Valid reports whether the ID is not the invalid sentinel.
func (id VertexID) Valid() bool {
	return id != InvalidVertexID
}

// Offset returns the raw offset value.
func (id VertexID) Offset() Index {
	return Index(id)
}

// Int returns the offset as an int, for slice indexing.
func (id VertexID) Int() int {
	return int(id)
}

// Add returns the ID advanced by n.
func (id VertexID) Add(n uint32) VertexID {
	return id + VertexID(n)
}

// Sub returns the ID moved back by n.
func (id VertexID) Sub(n uint32) VertexID {
	return id - VertexID(n)
}

// VertexIDFromInt converts an int offset to a VertexID, truncating to
// 32 bits.
func VertexIDFromInt(v int) VertexID {
	return VertexID(uint32(v))
}

// VertexIDFromUint16 widens a 16-bit offset to a VertexID.
func VertexIDFromUint16(v uint16) VertexID {
	return VertexID(v)
}

// Uint16 narrows the ID to 16 bits, truncating.
func (id VertexID) Uint16() uint16 {
	return uint16(id)
}
