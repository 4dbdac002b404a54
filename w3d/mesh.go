// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// geometry attributes of MeshHeader.Attrs
const (
	GeometryTypeNormal         = 0x00000000
	GeometryTypeHidden         = 0x00001000
	GeometryTypeTwoSided       = 0x00002000
	GeometryTypeCastShadow     = 0x00008000
	GeometryTypeCameraAligned  = 0x00010000
	GeometryTypeSkin           = 0x00020000
	GeometryTypeCameraOriented = 0x00060000
)

// prelit attributes of MeshHeader.Attrs
const (
	PrelitMask                 = 0x0F000000
	PrelitUnlit                = 0x01000000
	PrelitVertex               = 0x02000000
	PrelitLightmapMultiPass    = 0x04000000
	PrelitLightmapMultiTexture = 0x08000000
)

// MeshHeader.VertChannelFlags
const (
	VertexChannelLocation  = 0x01
	VertexChannelNormal    = 0x02
	VertexChannelBoneID    = 0x10
	VertexChannelTangent   = 0x20
	VertexChannelBitangent = 0x40
)

type MeshHeader struct {
	Version          Version
	Attrs            uint32
	MeshName         string
	ContainerName    string
	FaceCount        uint32
	VertCount        uint32
	MatlCount        uint32
	DamageStageCount uint32
	SortLevel        uint32
	PrelitVersion    uint32
	FutureCount      uint32
	VertChannelFlags uint32
	FaceChannelFlags uint32
	MinCorner        vec.Vec3
	MaxCorner        vec.Vec3
	SphCenter        vec.Vec3
	SphRadius        float32
}

// wireMeshCounts is the part of the mesh header after the two names.
type wireMeshCounts struct {
	FaceCount        uint32
	VertCount        uint32
	MatlCount        uint32
	DamageStageCount uint32
	SortLevel        uint32
	PrelitVersion    uint32
	FutureCount      uint32
	VertChannelFlags uint32
	FaceChannelFlags uint32
	MinCorner        vec.Vec3
	MaxCorner        vec.Vec3
	SphCenter        vec.Vec3
	SphRadius        float32
}

func (h *MeshHeader) is(mask uint32) bool {
	return h.Attrs&mask == mask
}

func (h *MeshHeader) CastsShadow() bool    { return h.is(GeometryTypeCastShadow) }
func (h *MeshHeader) TwoSided() bool       { return h.is(GeometryTypeTwoSided) }
func (h *MeshHeader) Hidden() bool         { return h.is(GeometryTypeHidden) }
func (h *MeshHeader) Skin() bool           { return h.is(GeometryTypeSkin) }
func (h *MeshHeader) CameraAligned() bool  { return h.is(GeometryTypeCameraAligned) }
func (h *MeshHeader) CameraOriented() bool { return h.is(GeometryTypeCameraOriented) }

// Triangle is one face. VertIDs index the owning mesh's Vertices.
type Triangle struct {
	VertIDs  [3]uint32
	Surface  SurfaceType
	Normal   vec.Vec3
	Distance float32
}

type VertexInfluence struct {
	BoneIdx uint16
	XtraIdx uint16
	BoneInf float32 // weight in [0,1]
	XtraInf float32
}

type wireVertexInfluence struct {
	BoneIdx uint16
	XtraIdx uint16
	BoneInf uint16 // percent
	XtraInf uint16
}

type Mesh struct {
	Header           MeshHeader
	UserText         string
	Vertices         []vec.Vec3
	Normals          []vec.Vec3
	VertexInfluences []VertexInfluence
	Triangles        []Triangle
	ShadeIDs         []int32
	MaterialInfo     *MaterialInfo
	Shaders          []Shader
	VertexMaterials  []*VertexMaterial
	Textures         []*Texture
	ShaderMaterials  []*ShaderMaterial
	MaterialPasses   []*MaterialPass
	AABBTree         *AABBTree

	PrelitUnlit                *Prelit
	PrelitVertex               *Prelit
	PrelitLightmapMultiPass    *Prelit
	PrelitLightmapMultiTexture *Prelit
}

func (m *Mesh) Name() string {
	return m.Header.MeshName
}

func (m *Mesh) ContainerName() string {
	return m.Header.ContainerName
}

// Identifier is the name HLod sub objects use to refer to the mesh.
func (m *Mesh) Identifier() string {
	return m.Header.ContainerName + "." + m.Header.MeshName
}

// Prelits returns the prelit variants present, in chunk type order.
func (m *Mesh) Prelits() []*Prelit {
	var ps []*Prelit
	for _, p := range []*Prelit{m.PrelitUnlit, m.PrelitVertex, m.PrelitLightmapMultiPass, m.PrelitLightmapMultiTexture} {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return ps
}

func (d *decoder) readMeshHeader(h *MeshHeader) error {
	var err error
	var version, attrs uint32
	if version, err = d.r.ReadUint32(); err != nil {
		return err
	}
	if attrs, err = d.r.ReadUint32(); err != nil {
		return err
	}
	if h.MeshName, err = d.r.ReadFixedString(); err != nil {
		return err
	}
	if h.ContainerName, err = d.r.ReadFixedString(); err != nil {
		return err
	}
	var c wireMeshCounts
	if err := d.r.Read(&c); err != nil {
		return err
	}
	h.Version = Version(version)
	h.Attrs = attrs
	h.FaceCount = c.FaceCount
	h.VertCount = c.VertCount
	h.MatlCount = c.MatlCount
	h.DamageStageCount = c.DamageStageCount
	h.SortLevel = c.SortLevel
	h.PrelitVersion = c.PrelitVersion
	h.FutureCount = c.FutureCount
	h.VertChannelFlags = c.VertChannelFlags
	h.FaceChannelFlags = c.FaceChannelFlags
	h.MinCorner = c.MinCorner
	h.MaxCorner = c.MaxCorner
	h.SphCenter = c.SphCenter
	h.SphRadius = c.SphRadius
	return nil
}

func (d *decoder) readMesh(end int64) (*Mesh, error) {
	m := &Mesh{}
	prelit := func(dst **Prelit) handler {
		return func(h ChunkHeader) (err error) {
			*dst, err = d.readPrelit(h)
			return
		}
	}
	err := d.walk(end, handlers{
		ChunkMeshHeader: func(h ChunkHeader) error {
			return d.readMeshHeader(&m.Header)
		},
		ChunkVertices: func(h ChunkHeader) (err error) {
			m.Vertices, err = readList[vec.Vec3](d.r, h.End)
			return
		},
		ChunkVertexNormals: func(h ChunkHeader) (err error) {
			m.Normals, err = readList[vec.Vec3](d.r, h.End)
			return
		},
		ChunkMeshUserText: func(h ChunkHeader) (err error) {
			m.UserText, err = d.r.ReadString()
			return
		},
		ChunkVertexInfluences: func(h ChunkHeader) error {
			infs, err := readList[wireVertexInfluence](d.r, h.End)
			if err != nil {
				return err
			}
			m.VertexInfluences = make([]VertexInfluence, len(infs))
			for i, w := range infs {
				m.VertexInfluences[i] = VertexInfluence{
					BoneIdx: w.BoneIdx,
					XtraIdx: w.XtraIdx,
					BoneInf: float32(w.BoneInf) / 100,
					XtraInf: float32(w.XtraInf) / 100,
				}
			}
			return nil
		},
		ChunkTriangles: func(h ChunkHeader) (err error) {
			m.Triangles, err = readList[Triangle](d.r, h.End)
			return
		},
		ChunkVertexShadeIndices: func(h ChunkHeader) (err error) {
			m.ShadeIDs, err = readList[int32](d.r, h.End)
			return
		},
		ChunkMaterialInfo: func(h ChunkHeader) error {
			m.MaterialInfo = &MaterialInfo{}
			return d.r.Read(m.MaterialInfo)
		},
		ChunkShaders: func(h ChunkHeader) (err error) {
			m.Shaders, err = readList[Shader](d.r, h.End)
			return
		},
		ChunkVertexMaterials: func(h ChunkHeader) (err error) {
			m.VertexMaterials, err = d.readVertexMaterials(h.End)
			return
		},
		ChunkTextures: func(h ChunkHeader) (err error) {
			m.Textures, err = d.readTextures(h.End)
			return
		},
		ChunkMaterialPass: func(h ChunkHeader) error {
			p, err := d.readMaterialPass(h.End)
			if err != nil {
				return err
			}
			m.MaterialPasses = append(m.MaterialPasses, p)
			return nil
		},
		ChunkShaderMaterials: func(h ChunkHeader) (err error) {
			m.ShaderMaterials, err = d.readShaderMaterials(h.End)
			return
		},
		ChunkAABBTree: func(h ChunkHeader) (err error) {
			m.AABBTree, err = d.readAABBTree(h.End)
			return
		},
		ChunkPrelitUnlit:         prelit(&m.PrelitUnlit),
		ChunkPrelitVertex:        prelit(&m.PrelitVertex),
		ChunkPrelitLightmapMPass: prelit(&m.PrelitLightmapMultiPass),
		ChunkPrelitLightmapMTex:  prelit(&m.PrelitLightmapMultiTexture),
	}.skipping(meshUnsupported))
	if err != nil {
		return nil, err
	}
	return m, nil
}
