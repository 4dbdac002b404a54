// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

const (
	BoxTypeMask       = 0xF
	CollisionTypeMask = 0xFF0

	CollisionTypePhysical   = 0x10
	CollisionTypeProjectile = 0x20
	CollisionTypeVis        = 0x40
	CollisionTypeCamera     = 0x80
	CollisionTypeVehicle    = 0x100
)

// CollisionBox is an oriented or axis aligned hit test volume.
type CollisionBox struct {
	Version        Version
	BoxType        uint32
	CollisionTypes uint32
	FullName       string // container.name
	Color          RGBA
	Center         vec.Vec3
	Extent         vec.Vec3
}

type wireBox struct {
	Version Version
	Flags   uint32
	Name    [LargeStringLength]byte
	Color   RGBA
	Center  vec.Vec3
	Extent  vec.Vec3
}

func (b *CollisionBox) Name() string {
	return afterFirstDot(b.FullName)
}

func (b *CollisionBox) ContainerName() string {
	return beforeFirstDot(b.FullName)
}

// Collides reports whether all bits of mask are set.
func (b *CollisionBox) Collides(mask uint32) bool {
	return b.CollisionTypes&mask == mask
}

func (b *CollisionBox) Mins() vec.Vec3 {
	return vec.Sub(b.Center, b.Extent)
}

func (b *CollisionBox) Maxs() vec.Vec3 {
	return vec.Add(b.Center, b.Extent)
}

func (d *decoder) readBox() (*CollisionBox, error) {
	var w wireBox
	if err := d.r.Read(&w); err != nil {
		return nil, err
	}
	return &CollisionBox{
		Version:        w.Version,
		BoxType:        w.Flags & BoxTypeMask,
		CollisionTypes: w.Flags & CollisionTypeMask,
		FullName:       fixedString(w.Name[:]),
		Color:          w.Color,
		Center:         w.Center,
		Extent:         w.Extent,
	}, nil
}
