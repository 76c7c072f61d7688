package vecpath

import "fmt"

// FillRule defines how to determine what is inside and what is outside of
// a shape, following the SVG specification.
type FillRule uint8

const (
	// EvenOdd considers a point inside when a ray from it crosses an odd
	// number of edges.
	EvenOdd FillRule = iota
	// NonZero considers a point inside when the winding number around it
	// is not zero.
	NonZero
)

// String returns a human-readable name for the fill rule.
func (fr FillRule) String() string {
	switch fr {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	default:
		return unknownStr
	}
}

// AcceptsWinding reports whether a region with the given winding number is
// inside the shape under this fill rule.
func (fr FillRule) AcceptsWinding(winding int) bool {
	if fr == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// MarshalText implements encoding.TextMarshaler. The encoding mirrors the
// SVG attribute values "evenodd" and "nonzero".
func (fr FillRule) MarshalText() ([]byte, error) {
	switch fr {
	case EvenOdd:
		return []byte("evenodd"), nil
	case NonZero:
		return []byte("nonzero"), nil
	default:
		return nil, fmt.Errorf("vecpath: unknown fill rule %d", uint8(fr))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fr *FillRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "evenodd":
		*fr = EvenOdd
	case "nonzero":
		*fr = NonZero
	default:
		return fmt.Errorf("vecpath: unknown fill rule %q", text)
	}
	return nil
}
