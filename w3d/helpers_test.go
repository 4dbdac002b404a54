// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"bytes"
	"encoding/binary"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// le encodes values little endian.
func le(vs ...interface{}) []byte {
	var b bytes.Buffer
	for _, v := range vs {
		if err := binary.Write(&b, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return b.Bytes()
}

// chunk builds a chunk with the given payload parts.
func chunk(tag uint32, parts ...[]byte) []byte {
	payload := bytes.Join(parts, nil)
	return append(le(tag, uint32(len(payload))), payload...)
}

// container builds a chunk with the "has sub chunks" bit set.
func container(tag uint32, parts ...[]byte) []byte {
	payload := bytes.Join(parts, nil)
	return append(le(tag, uint32(len(payload))|0x80000000), payload...)
}

func file(chunks ...[]byte) []byte {
	return bytes.Join(chunks, nil)
}

func name16(s string) [StringLength]byte {
	var b [StringLength]byte
	copy(b[:], s)
	return b
}

func name32(s string) [LargeStringLength]byte {
	var b [LargeStringLength]byte
	copy(b[:], s)
	return b
}

func cstr(s string) []byte {
	return append([]byte(s), 0)
}

func meshHeader(name, container string, verts, faces uint32, attrs uint32) []byte {
	return chunk(ChunkMeshHeader, le(
		uint32(0x00040002), attrs, name16(name), name16(container),
		wireMeshCounts{
			FaceCount: faces,
			VertCount: verts,
			MinCorner: vec.Vec3{X: -1, Y: -2, Z: -3},
			MaxCorner: vec.Vec3{X: 1, Y: 2, Z: 3},
			SphRadius: 4,
		},
	))
}

func dazzle(name, typ string) []byte {
	return container(ChunkDazzle,
		chunk(ChunkDazzleName, cstr(name)),
		chunk(ChunkDazzleTypeName, cstr(typ)),
	)
}

func hierarchy(name string, pivots ...wirePivot) []byte {
	return container(ChunkHierarchy,
		chunk(ChunkHierarchyHeader, le(uint32(0x00040001), name16(name), uint32(len(pivots)), vec.Vec3{})),
		chunk(ChunkPivots, le(pivots)),
	)
}

func hlod(model, hier string) []byte {
	return container(ChunkHLod,
		chunk(ChunkHLodHeader, le(uint32(0x00010000), uint32(1), name16(model), name16(hier))),
	)
}

func animation(name, hier string, channels ...[]byte) []byte {
	parts := [][]byte{chunk(ChunkAnimationHeader, le(wireAnimationHeader{
		Version:       0x00040001,
		Name:          name16(name),
		HierarchyName: name16(hier),
		NumFrames:     8,
		FrameRate:     30,
	}))}
	return container(ChunkAnimation, append(parts, channels...)...)
}

func compressedHeader(name, hier string, flavor uint16) []byte {
	return chunk(ChunkCompressedAnimationHeader, le(wireCompressedAnimationHeader{
		Version:       0x00000001,
		Name:          name16(name),
		HierarchyName: name16(hier),
		NumFrames:     16,
		FrameRate:     15,
		Flavor:        flavor,
	}))
}

func countLevel(ds []Diagnostic, l Level) int {
	n := 0
	for _, d := range ds {
		if d.Level == l {
			n++
		}
	}
	return n
}
