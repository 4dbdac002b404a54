// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"errors"
	"testing"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

func TestReadPrimitives(t *testing.T) {
	data := le(
		int8(-5), uint8(200), int16(-1234), uint16(60000),
		int32(-7), uint32(0xDEADBEEF), float32(1.5),
		vec.Vec2{X: 1, Y: 2},
		vec.Vec3{X: 1, Y: -2, Z: 3.25},
		vec.Vec4{X: 4, Y: 3, Z: 2, W: 1},
		[4]float32{0.1, 0.2, 0.3, 0.9}, // x, y, z, w
	)
	r := NewReader(data)
	if v, err := r.ReadInt8(); err != nil || v != -5 {
		t.Errorf("ReadInt8 = %v, %v want -5", v, err)
	}
	if v, err := r.ReadUint8(); err != nil || v != 200 {
		t.Errorf("ReadUint8 = %v, %v want 200", v, err)
	}
	if v, err := r.ReadInt16(); err != nil || v != -1234 {
		t.Errorf("ReadInt16 = %v, %v want -1234", v, err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 60000 {
		t.Errorf("ReadUint16 = %v, %v want 60000", v, err)
	}
	if v, err := r.ReadInt32(); err != nil || v != -7 {
		t.Errorf("ReadInt32 = %v, %v want -7", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadUint32 = %x, %v want deadbeef", v, err)
	}
	if v, err := r.ReadFloat32(); err != nil || v != 1.5 {
		t.Errorf("ReadFloat32 = %v, %v want 1.5", v, err)
	}
	if v, err := r.ReadVec2(); err != nil || v != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("ReadVec2 = %v, %v", v, err)
	}
	if v, err := r.ReadVec3(); err != nil || v != (vec.Vec3{X: 1, Y: -2, Z: 3.25}) {
		t.Errorf("ReadVec3 = %v, %v", v, err)
	}
	if v, err := r.ReadVec4(); err != nil || v != (vec.Vec4{X: 4, Y: 3, Z: 2, W: 1}) {
		t.Errorf("ReadVec4 = %v, %v", v, err)
	}
	want := vec.Quat{W: 0.9, X: 0.1, Y: 0.2, Z: 0.3}
	if v, err := r.ReadQuat(); err != nil || v != want {
		t.Errorf("ReadQuat = %v, %v want %v", v, err, want)
	}
	if r.Pos() != r.Size() {
		t.Errorf("Pos = %d want %d", r.Pos(), r.Size())
	}
}

func TestReadPastEnd(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadUint32(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadUint32 on 2 bytes = %v want %v", err, ErrUnexpectedEnd)
	}
	r = NewReader([]byte("abc"))
	if _, err := r.ReadString(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadString unterminated = %v want %v", err, ErrUnexpectedEnd)
	}
	r = NewReader(make([]byte, 8))
	if _, err := readFixedList[uint32](r, 1<<30); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("readFixedList huge count = %v want %v", err, ErrUnexpectedEnd)
	}
}

func TestFixedString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sword\x00junkjunkju", "Sword"},
		{"Bow\\extra", "Bow"},
		{"Axe\x00a\\b", "Axe"},
		{"SIXTEENCHARSLONG", "SIXTEENCHARSLONG"},
		{"caf\xe9", "café"},
		{"", ""},
	}
	for _, tc := range tests {
		b := name16(tc.in)
		r := NewReader(b[:])
		got, err := r.ReadFixedString()
		if err != nil {
			t.Fatalf("ReadFixedString(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ReadFixedString(%q) = %q want %q", tc.in, got, tc.want)
		}
		if r.Pos() != StringLength {
			t.Errorf("ReadFixedString(%q) consumed %d bytes want %d", tc.in, r.Pos(), StringLength)
		}
	}
	b := name32("CONTAINER.MESHNAME\x00xx")
	if got, err := NewReader(b[:]).ReadLongFixedString(); err != nil || got != "CONTAINER.MESHNAME" {
		t.Errorf("ReadLongFixedString = %q, %v", got, err)
	}
}

func TestReadString(t *testing.T) {
	r := NewReader(append(cstr("first"), cstr("")...))
	if s, err := r.ReadString(); err != nil || s != "first" {
		t.Errorf("ReadString = %q, %v want first", s, err)
	}
	if s, err := r.ReadString(); err != nil || s != "" {
		t.Errorf("ReadString = %q, %v want empty", s, err)
	}
}

func TestReadChunkHeader(t *testing.T) {
	r := NewReader(le(uint32(ChunkMesh), uint32(0x80000010)))
	h, err := r.ReadChunkHeader()
	if err != nil {
		t.Fatalf("ReadChunkHeader: %v", err)
	}
	want := ChunkHeader{Tag: ChunkMesh, Size: 0x10, Offset: 0, End: 0x18}
	if h != want {
		t.Errorf("ReadChunkHeader = %+v want %+v", h, want)
	}
}

func TestReadList(t *testing.T) {
	// 2 whole vectors and 4 bytes of a third
	data := append(le([]vec.Vec3{{X: 1}, {Y: 1}}), 0, 0, 0, 0)
	r := NewReader(data)
	vs, err := readList[vec.Vec3](r, int64(len(data)))
	if err != nil {
		t.Fatalf("readList: %v", err)
	}
	if len(vs) != 2 || vs[1] != (vec.Vec3{Y: 1}) {
		t.Errorf("readList = %v", vs)
	}
	if r.Pos() != 24 {
		t.Errorf("Pos = %d want 24", r.Pos())
	}
}
