// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

type HLodHeader struct {
	Version       Version
	LodCount      uint32
	ModelName     string
	HierarchyName string
}

type HLodArrayHeader struct {
	ModelCount    uint32
	MaxScreenSize float32
}

// HLodSubObject binds the mesh or box called Identifier to a pivot.
type HLodSubObject struct {
	BoneIndex  uint32
	Identifier string // container.name
}

// Name returns the identifier without its container prefix.
func (s *HLodSubObject) Name() string {
	return afterFirstDot(s.Identifier)
}

type HLodArray struct {
	Header     *HLodArrayHeader
	SubObjects []HLodSubObject
}

type HLod struct {
	Header         HLodHeader
	LodArrays      []*HLodArray
	AggregateArray *HLodArray
	ProxyArray     *HLodArray
}

func (h *HLod) ModelName() string {
	return h.Header.ModelName
}

func (h *HLod) HierarchyName() string {
	return h.Header.HierarchyName
}

func (d *decoder) readHLodArray(end int64) (*HLodArray, error) {
	a := &HLodArray{}
	err := d.walk(end, handlers{
		ChunkHLodSubObjectArray: func(h ChunkHeader) error {
			a.Header = &HLodArrayHeader{}
			return d.r.Read(a.Header)
		},
		ChunkHLodSubObject: func(h ChunkHeader) error {
			var w struct {
				BoneIndex  uint32
				Identifier [LargeStringLength]byte
			}
			if err := d.r.Read(&w); err != nil {
				return err
			}
			a.SubObjects = append(a.SubObjects, HLodSubObject{
				BoneIndex:  w.BoneIndex,
				Identifier: fixedString(w.Identifier[:]),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (d *decoder) readHLod(end int64) (*HLod, error) {
	hl := &HLod{}
	err := d.walk(end, handlers{
		ChunkHLodHeader: func(h ChunkHeader) error {
			var w struct {
				Version       Version
				LodCount      uint32
				ModelName     [StringLength]byte
				HierarchyName [StringLength]byte
			}
			if err := d.r.Read(&w); err != nil {
				return err
			}
			hl.Header = HLodHeader{
				Version:       w.Version,
				LodCount:      w.LodCount,
				ModelName:     fixedString(w.ModelName[:]),
				HierarchyName: fixedString(w.HierarchyName[:]),
			}
			return nil
		},
		ChunkHLodLodArray: func(h ChunkHeader) error {
			a, err := d.readHLodArray(h.End)
			if err != nil {
				return err
			}
			hl.LodArrays = append(hl.LodArrays, a)
			return nil
		},
		ChunkHLodAggregateArray: func(h ChunkHeader) (err error) {
			hl.AggregateArray, err = d.readHLodArray(h.End)
			return
		},
		ChunkHLodProxyArray: func(h ChunkHeader) (err error) {
			hl.ProxyArray, err = d.readHLodArray(h.End)
			return
		},
	})
	if err != nil {
		return nil, err
	}
	return hl, nil
}
