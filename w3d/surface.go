// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

// SurfaceType selects the impact effects of a triangle.
type SurfaceType uint32

const SurfaceDefault SurfaceType = 13

var surfaceNames = [...]string{
	"LightMetal",
	"HeavyMetal",
	"Water",
	"Sand",
	"Dirt",
	"Mud",
	"Grass",
	"Wood",
	"Concrete",
	"Flesh",
	"Rock",
	"Snow",
	"Ice",
	"Default",
	"Glass",
	"Cloth",
	"TiberiumField",
	"FoliagePermeable",
	"GlassPermeable",
	"IcePermeable",
	"ClothPermeable",
	"Electrical",
	"Flammable",
	"Steam",
	"ElectricalPermeable",
	"FlammablePermeable",
	"SteamPermeable",
	"WaterPermeable",
	"TiberiumWater",
	"TiberiumWaterPermeable",
	"UnderwaterDirt",
	"UnderwaterTiberiumDirt",
}

// NumSurfaceTypes is the number of named surface types.
const NumSurfaceTypes = len(surfaceNames)

func (s SurfaceType) Valid() bool {
	return int(s) < NumSurfaceTypes
}

// String returns the surface name, "Default" for out of range values.
func (s SurfaceType) String() string {
	if !s.Valid() {
		return surfaceNames[SurfaceDefault]
	}
	return surfaceNames[s]
}

// SurfaceTypeByName is the inverse of String.
func SurfaceTypeByName(name string) (SurfaceType, bool) {
	for i, n := range surfaceNames {
		if n == name {
			return SurfaceType(i), true
		}
	}
	return SurfaceDefault, false
}
