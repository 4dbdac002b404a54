// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/filesystem"
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
	"github.com/ClementJ18/finalBIGv2-sub000/model"
)

func init() {
	model.Register(".w3d", load)
}

// Model is everything decoded from one W3D file.
type Model struct {
	Meshes         []*Mesh
	Hierarchy      *Hierarchy
	HLod           *HLod
	Animation      AnimationData // nil, *Animation or *CompressedAnimation
	CollisionBoxes []*CollisionBox
	Dazzles        []*Dazzle

	// Diagnostics lists what was skipped or tolerated, in file order.
	Diagnostics []Diagnostic

	name string
}

// Name returns the file name the model was loaded from or, for models from Decode,
// the name of its hlod, hierarchy, animation or first mesh container.
func (m *Model) Name() string {
	switch {
	case m.name != "":
		return m.name
	case m.HLod != nil:
		return m.HLod.ModelName()
	case m.Hierarchy != nil:
		return m.Hierarchy.Name()
	case m.Animation != nil:
		return m.Animation.Name()
	case len(m.Meshes) > 0:
		return m.Meshes[0].ContainerName()
	}
	return ""
}

// Mins and Maxs bound all meshes and collision boxes.
func (m *Model) Mins() vec.Vec3 {
	mins, _ := m.bounds()
	return mins
}

func (m *Model) Maxs() vec.Vec3 {
	_, maxs := m.bounds()
	return maxs
}

func (m *Model) bounds() (vec.Vec3, vec.Vec3) {
	var mins, maxs vec.Vec3
	first := true
	add := func(a, b vec.Vec3) {
		if first {
			mins, maxs = vec.MinMax(a, b)
			first = false
			return
		}
		mins, maxs = vec.Union(mins, maxs, a, b)
	}
	for _, me := range m.Meshes {
		add(me.Header.MinCorner, me.Header.MaxCorner)
	}
	for _, b := range m.CollisionBoxes {
		add(b.Mins(), b.Maxs())
	}
	return mins, maxs
}

// Mesh returns the mesh whose identifier is id.
func (m *Model) Mesh(id string) *Mesh {
	for _, me := range m.Meshes {
		if me.Identifier() == id {
			return me
		}
	}
	return nil
}

// Warnings returns the warning level diagnostics.
func (m *Model) Warnings() []Diagnostic {
	var w []Diagnostic
	for _, d := range m.Diagnostics {
		if d.Level >= Warning {
			w = append(w, d)
		}
	}
	return w
}

// Decode decodes a complete W3D file. The only error is a truncated or overlong
// chunk, reported as ErrUnexpectedEnd wrapped in *ChunkError. No partial model is
// returned.
func Decode(data []byte) (*Model, error) {
	d := &decoder{r: NewReader(data)}
	m := &Model{}
	singular := func(have bool, h ChunkHeader, what string) bool {
		if have {
			d.warnf(h, "already got one %s chunk, skipping this one", what)
		}
		return !have
	}
	err := d.walkTop(handlers{
		ChunkMesh: func(h ChunkHeader) error {
			me, err := d.readMesh(h.End)
			if err != nil {
				return err
			}
			m.Meshes = append(m.Meshes, me)
			return nil
		},
		ChunkHierarchy: func(h ChunkHeader) (err error) {
			if singular(m.Hierarchy != nil, h, "hierarchy") {
				m.Hierarchy, err = d.readHierarchy(h.End)
			}
			return
		},
		ChunkHLod: func(h ChunkHeader) (err error) {
			if singular(m.HLod != nil, h, "hlod") {
				m.HLod, err = d.readHLod(h.End)
			}
			return
		},
		ChunkAnimation: func(h ChunkHeader) error {
			if !singular(m.Animation != nil, h, "animation") {
				return nil
			}
			a, err := d.readAnimation(h.End)
			if err != nil {
				return err
			}
			m.Animation = a
			return nil
		},
		ChunkCompressedAnimation: func(h ChunkHeader) error {
			if !singular(m.Animation != nil, h, "animation") {
				return nil
			}
			a, err := d.readCompressedAnimation(h.End)
			if err != nil {
				return err
			}
			m.Animation = a
			return nil
		},
		ChunkBox: func(h ChunkHeader) error {
			b, err := d.readBox()
			if err != nil {
				return err
			}
			m.CollisionBoxes = append(m.CollisionBoxes, b)
			return nil
		},
		ChunkDazzle: func(h ChunkHeader) error {
			z, err := d.readDazzle(h.End)
			if err != nil {
				return err
			}
			m.Dazzles = append(m.Dazzles, z)
			return nil
		},
	}.skipping(topLevelUnsupported))
	if err != nil {
		return nil, err
	}
	m.Diagnostics = d.diags
	return m, nil
}

func load(name string, data []byte) (model.Model, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m.name = filesystem.StripExt(filesystem.Base(name))
	return m, nil
}
