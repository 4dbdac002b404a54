// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"errors"
	"testing"
)

func TestWalkUnderRead(t *testing.T) {
	data := file(
		chunk(1, le(uint16(7), uint32(1), uint32(2))), // handler reads only the uint16
		chunk(2, le(uint32(42))),
	)
	d := &decoder{r: NewReader(data)}
	var first uint16
	var second uint32
	var pos int64
	err := d.walk(int64(len(data)), handlers{
		1: func(h ChunkHeader) (err error) {
			first, err = d.r.ReadUint16()
			return
		},
		2: func(h ChunkHeader) (err error) {
			pos = d.r.Pos()
			second, err = d.r.ReadUint32()
			return
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if first != 7 || second != 42 {
		t.Errorf("decoded %d, %d want 7, 42", first, second)
	}
	if pos != 8+10+8 {
		t.Errorf("second chunk payload at %d want %d", pos, 8+10+8)
	}
	if d.r.Pos() != int64(len(data)) {
		t.Errorf("Pos = %d want %d", d.r.Pos(), len(data))
	}
	if len(d.diags) != 0 {
		t.Errorf("diagnostics = %v want none", d.diags)
	}
}

func TestWalkOverRead(t *testing.T) {
	data := file(
		chunk(1, le(uint16(7))), // handler reads 4 bytes
		chunk(2, nil),
	)
	d := &decoder{r: NewReader(data)}
	seen := false
	err := d.walk(int64(len(data)), handlers{
		1: func(h ChunkHeader) error {
			_, err := d.r.ReadUint32()
			return err
		},
		2: func(h ChunkHeader) error {
			seen = true
			return nil
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if !seen {
		t.Errorf("sibling after over reading chunk not decoded")
	}
}

func TestWalkSkipsUnknown(t *testing.T) {
	data := file(
		chunk(0xDEAD, make([]byte, 100)),
		chunk(ChunkLight, make([]byte, 12)),
	)
	d := &decoder{r: NewReader(data)}
	if err := d.walk(int64(len(data)), handlers{}.skipping([]uint32{ChunkLight})); err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(d.diags) != 2 {
		t.Fatalf("diagnostics = %v want 2", d.diags)
	}
	if d.diags[0].Level != Warning || d.diags[0].Tag != 0xDEAD || d.diags[0].Offset != 0 {
		t.Errorf("unknown chunk diagnostic = %+v", d.diags[0])
	}
	if d.diags[1].Level != Info || d.diags[1].Tag != ChunkLight || d.diags[1].Offset != 108 {
		t.Errorf("unsupported chunk diagnostic = %+v", d.diags[1])
	}
}

func TestWalkChildOverrunsParent(t *testing.T) {
	// parent of 12 bytes holding a child that claims 8 bytes of payload
	child := chunk(1, make([]byte, 8))
	data := file(child[:12], chunk(2, nil))
	d := &decoder{r: NewReader(data)}
	var end int64
	err := d.walk(12, handlers{
		1: func(h ChunkHeader) error {
			end = h.End
			return nil
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if end != 12 {
		t.Errorf("clamped end = %d want 12", end)
	}
	if d.r.Pos() != 12 {
		t.Errorf("Pos = %d want 12", d.r.Pos())
	}
	if countLevel(d.diags, Warning) != 1 {
		t.Errorf("diagnostics = %v want one warning", d.diags)
	}
}

func TestWalkTrailingBytes(t *testing.T) {
	data := file(chunk(1, nil), []byte{1, 2, 3}, chunk(2, nil))
	d := &decoder{r: NewReader(data)}
	if err := d.walk(11, handlers{1: func(ChunkHeader) error { return nil }}); err != nil {
		t.Fatalf("walk: %v", err)
	}
	if d.r.Pos() != 11 {
		t.Errorf("Pos = %d want 11", d.r.Pos())
	}
	if countLevel(d.diags, Warning) != 1 {
		t.Errorf("diagnostics = %v want one warning", d.diags)
	}
}

func TestWalkPastEnd(t *testing.T) {
	data := append(le(uint32(ChunkMesh), uint32(64)), make([]byte, 10)...)
	d := &decoder{r: NewReader(data)}
	err := d.walk(int64(len(data)), handlers{})
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("walk = %v want %v", err, ErrUnexpectedEnd)
	}
	var ce *ChunkError
	if !errors.As(err, &ce) || ce.Tag != ChunkMesh || ce.Offset != 0 {
		t.Errorf("walk error = %#v want *ChunkError for MESH at 0", err)
	}
}

func TestDecodeTrailingBytesAtEnd(t *testing.T) {
	mesh := container(ChunkMesh, meshHeader("MESH", "CONT", 0, 0, 0), []byte{1, 2, 3, 4})
	for _, data := range [][]byte{
		file(mesh, dazzle("CONT.D", "REN")),
		file(mesh),
	} {
		m, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%d bytes): %v", len(data), err)
		}
		if len(m.Meshes) != 1 || m.Meshes[0].Name() != "MESH" {
			t.Errorf("Meshes = %v want MESH", m.Meshes)
		}
		if len(m.Warnings()) != 1 {
			t.Errorf("Warnings = %v want one for the trailing bytes", m.Warnings())
		}
	}

	// at the top level the same bytes are a truncated chunk header
	if _, err := Decode(file(dazzle("CONT.D", "REN"), []byte{1, 2, 3, 4})); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Decode = %v want %v", err, ErrUnexpectedEnd)
	}
}

func TestUnsupportedPerContext(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		level Level
	}{
		{"deform at top level", chunk(ChunkDeform, make([]byte, 4)), Warning},
		{"emitter at top level", chunk(ChunkEmitter, make([]byte, 4)), Info},
		{"emitter in mesh", container(ChunkMesh, meshHeader("M", "C", 0, 0, 0), chunk(ChunkEmitter, nil)), Warning},
		{"deform in mesh", container(ChunkMesh, meshHeader("M", "C", 0, 0, 0), chunk(ChunkDeform, nil)), Info},
	}
	for _, tc := range tests {
		m, err := Decode(tc.data)
		if err != nil {
			t.Fatalf("%s: Decode: %v", tc.name, err)
		}
		if len(m.Diagnostics) != 1 || m.Diagnostics[0].Level != tc.level {
			t.Errorf("%s: Diagnostics = %v want one at level %v", tc.name, m.Diagnostics, tc.level)
		}
	}
}
