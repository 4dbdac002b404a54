// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"fmt"
	"strings"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// Version packs major into the upper and minor into the lower 16 bits.
type Version uint32

func (v Version) Major() uint16 {
	return uint16(v >> 16)
}

func (v Version) Minor() uint16 {
	return uint16(v)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// RGBA is a color with 0-255 channels.
type RGBA struct {
	R, G, B, A uint8
}

// RGBAFromVec scales float channels by scale and truncates them.
func RGBAFromVec(v vec.Vec4, scale float32) RGBA {
	return RGBA{
		R: channel(v.X * scale),
		G: channel(v.Y * scale),
		B: channel(v.Z * scale),
		A: channel(v.W * scale),
	}
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}

// Vec returns the color as floats in [0,1].
func (c RGBA) Vec() vec.Vec4 {
	return vec.Vec4{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
		W: float32(c.A) / 255,
	}
}

func (c RGBA) String() string {
	return fmt.Sprintf("RGBA(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// afterFirstDot returns the part of name after its first '.', or name itself.
func afterFirstDot(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// beforeFirstDot returns the part of name before its first '.', or name itself.
func beforeFirstDot(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
