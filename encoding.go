package vecpath

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// ErrInvalidEncoding reports that persisted path data failed structural
// validation during decoding.
var ErrInvalidEncoding = errors.New("vecpath: invalid path encoding")

// Binary encoding layout. The encoding mirrors the in-memory buffers with
// no additional framing: a fixed header, the verb stream (one byte per
// verb), then the point stream (two little-endian float64 per point).
//
//	offset 0: magic "vecp"
//	offset 4: format version (1)
//	offset 5: uint32 verb count
//	offset 9: uint32 point count
//	offset 13: verbs, then points
const (
	encodingMagic   = "vecp"
	encodingVersion = 1
	headerSize      = 13
	pointSize       = 16
)

// Encode serializes the path into the binary dual-stream format. The
// result round-trips through [DecodePath].
func (p *Path) Encode() []byte {
	buf := make([]byte, 0, headerSize+len(p.verbs)+len(p.points)*pointSize)
	buf = append(buf, encodingMagic...)
	buf = append(buf, encodingVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.verbs)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.points)))
	for _, v := range p.verbs {
		buf = append(buf, byte(v))
	}
	for _, pt := range p.points {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pt.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pt.Y))
	}
	return buf
}

// DecodePath deserializes a path from the binary format produced by
// [Path.Encode]. The verb stream is validated structurally: unknown
// verbs, point counts that disagree with the verbs, and subpaths that
// are not properly bracketed by Begin and Close/End all fail with an
// error wrapping [ErrInvalidEncoding]. A successfully decoded path
// upholds the same invariants as a built one.
func DecodePath(data []byte) (*Path, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidEncoding)
	}
	if string(data[:4]) != encodingMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidEncoding)
	}
	if data[4] != encodingVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidEncoding, data[4])
	}
	verbCount := int(binary.LittleEndian.Uint32(data[5:9]))
	pointCount := int(binary.LittleEndian.Uint32(data[9:13]))
	if len(data) != headerSize+verbCount+pointCount*pointSize {
		return nil, fmt.Errorf("%w: length %d does not match %d verbs and %d points",
			ErrInvalidEncoding, len(data), verbCount, pointCount)
	}

	verbs := make([]Verb, verbCount)
	needed := 0
	open := false
	for i := range verbs {
		v := Verb(data[headerSize+i])
		switch v {
		case VerbBegin:
			if open {
				return nil, fmt.Errorf("%w: Begin inside open subpath at verb %d", ErrInvalidEncoding, i)
			}
			open = true
		case VerbLineTo, VerbQuadTo, VerbCubicTo:
			if !open {
				return nil, fmt.Errorf("%w: %v outside subpath at verb %d", ErrInvalidEncoding, v, i)
			}
		case VerbClose, VerbEnd:
			if !open {
				return nil, fmt.Errorf("%w: %v outside subpath at verb %d", ErrInvalidEncoding, v, i)
			}
			open = false
		default:
			return nil, fmt.Errorf("%w: unknown verb %d at verb %d", ErrInvalidEncoding, byte(v), i)
		}
		verbs[i] = v
		needed += v.PointCount()
	}
	if open {
		return nil, fmt.Errorf("%w: unterminated subpath", ErrInvalidEncoding)
	}
	if needed != pointCount {
		return nil, fmt.Errorf("%w: verbs consume %d points, stream has %d",
			ErrInvalidEncoding, needed, pointCount)
	}

	points := make([]curve.Point, pointCount)
	off := headerSize + verbCount
	for i := range points {
		x := math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
		y := math.Float64frombits(binary.LittleEndian.Uint64(data[off+8:]))
		points[i] = curve.Pt(x, y)
		off += pointSize
	}

	return &Path{verbs: verbs, points: points}, nil
}
