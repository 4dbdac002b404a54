// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// RootPivot is the parent id of pivots without a parent.
const RootPivot = -1

type HierarchyHeader struct {
	Version   Version
	Name      string
	NumPivots uint32
	Center    vec.Vec3
}

// HierarchyPivot is one bone. ParentID indexes the owning hierarchy's Pivots and
// may point forward.
type HierarchyPivot struct {
	Name        string
	ParentID    int32
	Translation vec.Vec3
	EulerAngles vec.Vec3
	Rotation    vec.Quat
}

func (p *HierarchyPivot) IsRoot() bool {
	return p.ParentID < 0
}

type wirePivot struct {
	Name        [StringLength]byte
	ParentID    int32
	Translation vec.Vec3
	EulerAngles vec.Vec3
	Rotation    wireQuat
}

// PivotFixup is a 4x3 row major transform.
type PivotFixup [4]vec.Vec3

type Hierarchy struct {
	Header      HierarchyHeader
	Pivots      []HierarchyPivot
	PivotFixups []PivotFixup
}

func (h *Hierarchy) Name() string {
	return h.Header.Name
}

// Parent returns the parent of pivot i, nil for roots and dangling ids.
func (h *Hierarchy) Parent(i int) *HierarchyPivot {
	if i < 0 || i >= len(h.Pivots) {
		return nil
	}
	p := int(h.Pivots[i].ParentID)
	if p < 0 || p >= len(h.Pivots) {
		return nil
	}
	return &h.Pivots[p]
}

// PivotIndex returns the index of the pivot called name, or -1.
func (h *Hierarchy) PivotIndex(name string) int {
	for i := range h.Pivots {
		if h.Pivots[i].Name == name {
			return i
		}
	}
	return -1
}

func (d *decoder) readHierarchy(end int64) (*Hierarchy, error) {
	hr := &Hierarchy{}
	err := d.walk(end, handlers{
		ChunkHierarchyHeader: func(h ChunkHeader) error {
			var w struct {
				Version   Version
				Name      [StringLength]byte
				NumPivots uint32
				Center    vec.Vec3
			}
			if err := d.r.Read(&w); err != nil {
				return err
			}
			hr.Header = HierarchyHeader{
				Version:   w.Version,
				Name:      fixedString(w.Name[:]),
				NumPivots: w.NumPivots,
				Center:    w.Center,
			}
			return nil
		},
		ChunkPivots: func(h ChunkHeader) error {
			ws, err := readList[wirePivot](d.r, h.End)
			if err != nil {
				return err
			}
			hr.Pivots = make([]HierarchyPivot, len(ws))
			for i, w := range ws {
				hr.Pivots[i] = HierarchyPivot{
					Name:        fixedString(w.Name[:]),
					ParentID:    w.ParentID,
					Translation: w.Translation,
					EulerAngles: w.EulerAngles,
					Rotation:    w.Rotation.quat(),
				}
			}
			return nil
		},
		ChunkPivotFixups: func(h ChunkHeader) (err error) {
			hr.PivotFixups, err = readList[PivotFixup](d.r, h.End)
			return
		},
	})
	if err != nil {
		return nil, err
	}
	return hr, nil
}
