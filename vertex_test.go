package vecpath

import "testing"

func TestVertexIDValidity(t *testing.T) {
	if InvalidVertexID.Valid() {
		t.Error("InvalidVertexID reports valid")
	}
	if !VertexID(0).Valid() {
		t.Error("VertexID(0) reports invalid")
	}
	if !VertexID(1<<32 - 2).Valid() {
		t.Error("largest representable id reports invalid")
	}
}

func TestVertexIDArithmetic(t *testing.T) {
	id := VertexID(10)
	if got := id.Add(5); got != VertexID(15) {
		t.Errorf("Add(5) = %v, want 15", got)
	}
	if got := id.Sub(3); got != VertexID(7) {
		t.Errorf("Sub(3) = %v, want 7", got)
	}
	if got := id.Offset(); got != Index(10) {
		t.Errorf("Offset() = %v, want 10", got)
	}
}

func TestVertexIDConversions(t *testing.T) {
	id := VertexIDFromInt(42)
	if id.Int() != 42 {
		t.Errorf("Int() = %d, want 42", id.Int())
	}

	id = VertexIDFromUint16(65535)
	if id != VertexID(65535) {
		t.Errorf("VertexIDFromUint16(65535) = %v", id)
	}
	if id.Uint16() != 65535 {
		t.Errorf("Uint16() = %d, want 65535", id.Uint16())
	}
}
