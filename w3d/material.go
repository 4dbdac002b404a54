// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

type MaterialInfo struct {
	PassCount           uint32
	VertexMaterialCount uint32
	ShaderCount         uint32
	TextureCount        uint32
}

// Shader is the fixed function render state of one pass.
type Shader struct {
	DepthCompare        uint8
	DepthMask           uint8
	ColorMask           uint8 // unused
	DestBlend           uint8
	FogFunc             uint8 // unused
	PriGradient         uint8
	SecGradient         uint8
	SrcBlend            uint8
	Texturing           uint8
	DetailColorFunc     uint8
	DetailAlphaFunc     uint8
	ShaderPreset        uint8 // unused
	AlphaTest           uint8
	PostDetailColorFunc uint8
	PostDetailAlphaFunc uint8
	Pad                 uint8
}

// VertexMaterialInfo.Attributes
const (
	VertexMaterialUseDepthCue           = 0x1
	VertexMaterialArgbEmissiveOnly      = 0x2
	VertexMaterialCopySpecularToDiffuse = 0x4
	VertexMaterialDepthCueToAlpha       = 0x8
	VertexMaterialStage0MappingMask     = 0x00FF0000
	VertexMaterialStage1MappingMask     = 0x0000FF00
)

type VertexMaterialInfo struct {
	Attributes   int32
	Ambient      RGBA // alpha is padding for all four colors
	Diffuse      RGBA
	Specular     RGBA
	Emissive     RGBA
	Shininess    float32
	Opacity      float32
	Translucency float32
}

type VertexMaterial struct {
	Name  string
	Info  *VertexMaterialInfo
	Args0 string
	Args1 string
}

type TextureInfo struct {
	Attributes    uint16
	AnimationType uint16
	FrameCount    uint32
	FrameRate     float32
}

type Texture struct {
	File string
	Info *TextureInfo
}

// TextureStage binds textures and uv sets for one stage of a pass. Repeated
// sub chunks append.
type TextureStage struct {
	TextureIDs      [][]int32
	TexCoords       [][]vec.Vec2
	PerFaceCoordIDs [][][3]uint32
}

type MaterialPass struct {
	VertexMaterialIDs []uint32
	ShaderIDs         []uint32
	DCG               []RGBA // diffuse color per vertex
	DIG               []RGBA // diffuse illumination per vertex
	SCG               []RGBA // specular color per vertex
	ShaderMaterialIDs []uint32
	TextureStages     []*TextureStage
	TexCoords         []vec.Vec2
}

// Prelit is the material set of one precomputed lighting variant.
type Prelit struct {
	Type            uint32 // chunk type it was read from
	MaterialInfo    *MaterialInfo
	Shaders         []Shader
	VertexMaterials []*VertexMaterial
	Textures        []*Texture
	MaterialPasses  []*MaterialPass
}

func (d *decoder) readVertexMaterial(end int64) (*VertexMaterial, error) {
	vm := &VertexMaterial{}
	err := d.walk(end, handlers{
		ChunkVertexMaterialName: func(h ChunkHeader) (err error) {
			vm.Name, err = d.r.ReadString()
			return
		},
		ChunkVertexMaterialInfo: func(h ChunkHeader) error {
			vm.Info = &VertexMaterialInfo{}
			return d.r.Read(vm.Info)
		},
		ChunkVertexMapperArgs0: func(h ChunkHeader) (err error) {
			vm.Args0, err = d.r.ReadString()
			return
		},
		ChunkVertexMapperArgs1: func(h ChunkHeader) (err error) {
			vm.Args1, err = d.r.ReadString()
			return
		},
	})
	return vm, err
}

func (d *decoder) readVertexMaterials(end int64) ([]*VertexMaterial, error) {
	var vms []*VertexMaterial
	err := d.array(end, ChunkVertexMaterial, func(h ChunkHeader) error {
		vm, err := d.readVertexMaterial(h.End)
		if err != nil {
			return err
		}
		vms = append(vms, vm)
		return nil
	})
	return vms, err
}

func (d *decoder) readTexture(end int64) (*Texture, error) {
	t := &Texture{}
	err := d.walk(end, handlers{
		ChunkTextureName: func(h ChunkHeader) (err error) {
			t.File, err = d.r.ReadString()
			return
		},
		ChunkTextureInfo: func(h ChunkHeader) error {
			t.Info = &TextureInfo{}
			return d.r.Read(t.Info)
		},
	})
	return t, err
}

func (d *decoder) readTextures(end int64) ([]*Texture, error) {
	var ts []*Texture
	err := d.array(end, ChunkTexture, func(h ChunkHeader) error {
		t, err := d.readTexture(h.End)
		if err != nil {
			return err
		}
		ts = append(ts, t)
		return nil
	})
	return ts, err
}

func (d *decoder) readTextureStage(end int64) (*TextureStage, error) {
	s := &TextureStage{}
	err := d.walk(end, handlers{
		ChunkTextureIDs: func(h ChunkHeader) error {
			ids, err := readList[int32](d.r, h.End)
			s.TextureIDs = append(s.TextureIDs, ids)
			return err
		},
		ChunkStageTexCoords: func(h ChunkHeader) error {
			uv, err := readList[vec.Vec2](d.r, h.End)
			s.TexCoords = append(s.TexCoords, uv)
			return err
		},
		ChunkPerFaceTexCoordIDs: func(h ChunkHeader) error {
			ids, err := readList[[3]uint32](d.r, h.End)
			s.PerFaceCoordIDs = append(s.PerFaceCoordIDs, ids)
			return err
		},
	})
	return s, err
}

func (d *decoder) readMaterialPass(end int64) (*MaterialPass, error) {
	p := &MaterialPass{}
	err := d.walk(end, handlers{
		ChunkVertexMaterialIDs: func(h ChunkHeader) (err error) {
			p.VertexMaterialIDs, err = readList[uint32](d.r, h.End)
			return
		},
		ChunkShaderIDs: func(h ChunkHeader) (err error) {
			p.ShaderIDs, err = readList[uint32](d.r, h.End)
			return
		},
		ChunkDCG: func(h ChunkHeader) (err error) {
			p.DCG, err = readList[RGBA](d.r, h.End)
			return
		},
		ChunkDIG: func(h ChunkHeader) (err error) {
			p.DIG, err = readList[RGBA](d.r, h.End)
			return
		},
		ChunkSCG: func(h ChunkHeader) (err error) {
			p.SCG, err = readList[RGBA](d.r, h.End)
			return
		},
		ChunkShaderMaterialID: func(h ChunkHeader) (err error) {
			p.ShaderMaterialIDs, err = readList[uint32](d.r, h.End)
			return
		},
		ChunkTextureStage: func(h ChunkHeader) error {
			s, err := d.readTextureStage(h.End)
			if err != nil {
				return err
			}
			p.TextureStages = append(p.TextureStages, s)
			return nil
		},
		ChunkStageTexCoords: func(h ChunkHeader) (err error) {
			p.TexCoords, err = readList[vec.Vec2](d.r, h.End)
			return
		},
	})
	return p, err
}

func (d *decoder) readPrelit(h ChunkHeader) (*Prelit, error) {
	p := &Prelit{Type: h.Tag}
	err := d.walk(h.End, handlers{
		ChunkMaterialInfo: func(h ChunkHeader) error {
			p.MaterialInfo = &MaterialInfo{}
			return d.r.Read(p.MaterialInfo)
		},
		ChunkShaders: func(h ChunkHeader) (err error) {
			p.Shaders, err = readList[Shader](d.r, h.End)
			return
		},
		ChunkVertexMaterials: func(h ChunkHeader) (err error) {
			p.VertexMaterials, err = d.readVertexMaterials(h.End)
			return
		},
		ChunkTextures: func(h ChunkHeader) (err error) {
			p.Textures, err = d.readTextures(h.End)
			return
		},
		ChunkMaterialPass: func(h ChunkHeader) error {
			mp, err := d.readMaterialPass(h.End)
			if err != nil {
				return err
			}
			p.MaterialPasses = append(p.MaterialPasses, mp)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
