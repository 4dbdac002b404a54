// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"encoding/binary"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// CompressedAnimationHeader.Flavor
const (
	FlavorTimeCoded     = 0
	FlavorAdaptiveDelta = 1
)

// MotionChannel.DeltaType
const (
	MotionTimeCoded      = 0
	MotionAdaptiveDelta4 = 1
	MotionAdaptiveDelta8 = 2
)

// timeCodeFlag marks keys that are not interpolated, and the value of bit channel keys.
const timeCodeFlag = 0x80000000

type CompressedAnimationHeader struct {
	Version       Version
	Name          string
	HierarchyName string
	NumFrames     uint32
	FrameRate     uint16
	Flavor        uint16
}

type wireCompressedAnimationHeader struct {
	Version       Version
	Name          [StringLength]byte
	HierarchyName [StringLength]byte
	NumFrames     uint32
	FrameRate     uint16
	Flavor        uint16
}

// Key is one keyframe of a time coded channel. Quaternion channels use Quat, the
// others Value.
type Key struct {
	Frame        uint32
	Interpolated bool
	Value        float32
	Quat         vec.Quat
}

type TimeCodedChannel struct {
	Pivot     uint16
	VectorLen uint8
	Type      uint8
	Keys      []Key
}

// DeltaBlock is a run of 16 packed deltas for one vector component.
type DeltaBlock struct {
	Index uint8
	Bits  int // 4 or 8
	Data  []int8
}

// Deltas unpacks the block into one signed delta per frame. 4 bit blocks store the
// low nibble first.
func (b *DeltaBlock) Deltas() []int8 {
	if b.Bits != 4 {
		return b.Data
	}
	out := make([]int8, 0, len(b.Data)*2)
	for _, v := range b.Data {
		lo := int8(uint8(v)<<4) >> 4
		hi := v >> 4
		out = append(out, lo, hi)
	}
	return out
}

type wireDeltaBlock4 struct {
	Index uint8
	Data  [8]int8
}

type wireDeltaBlock8 struct {
	Index uint8
	Data  [16]int8
}

type AdaptiveDeltaChannel struct {
	NumTimeCodes uint32
	Pivot        uint16
	VectorLen    uint8
	Type         uint8
	Scale        float32
	Initial      []float32
	Blocks       []DeltaBlock
}

type TimeCodedBitChannel struct {
	Pivot   uint16
	Type    uint8
	Default float32
	Keys    []BitKey
}

type BitKey struct {
	Frame uint32
	Value bool
}

// MotionChannel is the newer channel encoding with a per channel delta type.
type MotionChannel struct {
	DeltaType    uint8
	VectorLen    uint8
	Type         uint8
	NumTimeCodes uint16
	Pivot        uint16

	// MotionTimeCoded
	Frames []uint16
	Values [][]float32 // VectorLen floats per key, quaternions as w, x, y, z

	// MotionAdaptiveDelta4 and MotionAdaptiveDelta8
	Scale   float32
	Initial []float32
	Blocks  []DeltaBlock
}

type CompressedAnimation struct {
	Header                CompressedAnimationHeader
	TimeCodedChannels     []*TimeCodedChannel
	AdaptiveDeltaChannels []*AdaptiveDeltaChannel
	BitChannels           []*TimeCodedBitChannel
	MotionChannels        []*MotionChannel
}

func (a *CompressedAnimation) Name() string          { return a.Header.Name }
func (a *CompressedAnimation) HierarchyName() string { return a.Header.HierarchyName }
func (a *CompressedAnimation) NumFrames() uint32     { return a.Header.NumFrames }
func (a *CompressedAnimation) FrameRate() uint32     { return uint32(a.Header.FrameRate) }
func (a *CompressedAnimation) animationData()        {}

func (a *CompressedAnimation) NumChannels() int {
	return len(a.TimeCodedChannels) + len(a.AdaptiveDeltaChannels) +
		len(a.BitChannels) + len(a.MotionChannels)
}

func (d *decoder) readKeyValue(typ uint8, k *Key) error {
	var err error
	if typ == ChannelQ {
		k.Quat, err = d.r.ReadQuat()
	} else {
		k.Value, err = d.r.ReadFloat32()
	}
	return err
}

func (d *decoder) readTimeCodedChannel() (*TimeCodedChannel, error) {
	var hdr struct {
		NumTimeCodes uint32
		Pivot        uint16
		VectorLen    uint8
		Type         uint8
	}
	if err := d.r.Read(&hdr); err != nil {
		return nil, err
	}
	c := &TimeCodedChannel{Pivot: hdr.Pivot, VectorLen: hdr.VectorLen, Type: hdr.Type}
	keySize := int64(8)
	if hdr.Type == ChannelQ {
		keySize = 20
	}
	if need := int64(hdr.NumTimeCodes) * keySize; need > d.r.Size()-d.r.Pos() {
		return nil, d.r.short(need)
	}
	c.Keys = make([]Key, hdr.NumTimeCodes)
	for i := range c.Keys {
		tc, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		c.Keys[i].Frame = tc &^ timeCodeFlag
		c.Keys[i].Interpolated = tc&timeCodeFlag == 0
		if err := d.readKeyValue(hdr.Type, &c.Keys[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// readVector reads n floats, a w, x, y, z quaternion for quaternion channels.
func (d *decoder) readVector(typ uint8, n int) ([]float32, error) {
	if typ == ChannelQ {
		q, err := d.r.ReadQuat()
		if err != nil {
			return nil, err
		}
		return []float32{q.W, q.X, q.Y, q.Z}, nil
	}
	return readFixedList[float32](d.r, n)
}

func (d *decoder) readDeltaBlocks(count int64, bits int) ([]DeltaBlock, error) {
	size := int64(binary.Size(wireDeltaBlock8{}))
	if bits == 4 {
		size = int64(binary.Size(wireDeltaBlock4{}))
	}
	if need := count * size; need > d.r.Size()-d.r.Pos() {
		return nil, d.r.short(need)
	}
	var blocks []DeltaBlock
	if bits == 4 {
		ws, err := readFixedList[wireDeltaBlock4](d.r, int(count))
		if err != nil {
			return nil, err
		}
		for _, w := range ws {
			blocks = append(blocks, DeltaBlock{Index: w.Index, Bits: 4, Data: append([]int8(nil), w.Data[:]...)})
		}
		return blocks, nil
	}
	ws, err := readFixedList[wireDeltaBlock8](d.r, int(count))
	if err != nil {
		return nil, err
	}
	for _, w := range ws {
		blocks = append(blocks, DeltaBlock{Index: w.Index, Bits: 8, Data: append([]int8(nil), w.Data[:]...)})
	}
	return blocks, nil
}

// deltaBlockCount is the number of 16 frame blocks for every component of a channel.
func deltaBlockCount(numTimeCodes uint32, vectorLen uint8) int64 {
	return ((int64(numTimeCodes) + 15) >> 4) * int64(vectorLen)
}

func (d *decoder) readAdaptiveDeltaChannel() (*AdaptiveDeltaChannel, error) {
	var hdr struct {
		NumTimeCodes uint32
		Pivot        uint16
		VectorLen    uint8
		Type         uint8
		Scale        float32
	}
	if err := d.r.Read(&hdr); err != nil {
		return nil, err
	}
	c := &AdaptiveDeltaChannel{
		NumTimeCodes: hdr.NumTimeCodes,
		Pivot:        hdr.Pivot,
		VectorLen:    hdr.VectorLen,
		Type:         hdr.Type,
		Scale:        hdr.Scale,
	}
	var err error
	if c.Initial, err = d.readVector(c.Type, int(c.VectorLen)); err != nil {
		return nil, err
	}
	if c.Blocks, err = d.readDeltaBlocks(deltaBlockCount(c.NumTimeCodes, c.VectorLen), 4); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decoder) readTimeCodedBitChannel() (*TimeCodedBitChannel, error) {
	var hdr struct {
		NumTimeCodes uint32
		Pivot        uint16
		Type         uint8
		Default      uint8
	}
	if err := d.r.Read(&hdr); err != nil {
		return nil, err
	}
	tcs, err := readFixedList[uint32](d.r, int(hdr.NumTimeCodes))
	if err != nil {
		return nil, err
	}
	c := &TimeCodedBitChannel{
		Pivot:   hdr.Pivot,
		Type:    hdr.Type,
		Default: float32(hdr.Default) / 255,
		Keys:    make([]BitKey, len(tcs)),
	}
	for i, tc := range tcs {
		c.Keys[i] = BitKey{Frame: tc &^ timeCodeFlag, Value: tc&timeCodeFlag != 0}
	}
	return c, nil
}

func (d *decoder) readMotionChannel(h ChunkHeader) (*MotionChannel, error) {
	var hdr struct {
		Zero         uint8
		DeltaType    uint8
		VectorLen    uint8
		Type         uint8
		NumTimeCodes uint16
		Pivot        uint16
	}
	if err := d.r.Read(&hdr); err != nil {
		return nil, err
	}
	c := &MotionChannel{
		DeltaType:    hdr.DeltaType,
		VectorLen:    hdr.VectorLen,
		Type:         hdr.Type,
		NumTimeCodes: hdr.NumTimeCodes,
		Pivot:        hdr.Pivot,
	}
	var err error
	switch c.DeltaType {
	case MotionTimeCoded:
		n := int(c.NumTimeCodes)
		if c.Frames, err = readFixedList[uint16](d.r, n); err != nil {
			return nil, err
		}
		if n%2 != 0 {
			if _, err = d.r.ReadUint16(); err != nil {
				return nil, err
			}
		}
		if need := int64(n) * int64(c.VectorLen) * 4; need > d.r.Size()-d.r.Pos() {
			return nil, d.r.short(need)
		}
		c.Values = make([][]float32, n)
		for i := range c.Values {
			if c.Values[i], err = d.readVector(c.Type, int(c.VectorLen)); err != nil {
				return nil, err
			}
		}
	case MotionAdaptiveDelta4, MotionAdaptiveDelta8:
		if c.Scale, err = d.r.ReadFloat32(); err != nil {
			return nil, err
		}
		if c.Initial, err = d.readVector(c.Type, int(c.VectorLen)); err != nil {
			return nil, err
		}
		bits := 4
		if c.DeltaType == MotionAdaptiveDelta8 {
			bits = 8
		}
		if c.Blocks, err = d.readDeltaBlocks(deltaBlockCount(uint32(c.NumTimeCodes), c.VectorLen), bits); err != nil {
			return nil, err
		}
	default:
		d.warnf(h, "unknown motion channel delta type %d", c.DeltaType)
	}
	return c, nil
}

func (d *decoder) readCompressedAnimation(end int64) (*CompressedAnimation, error) {
	a := &CompressedAnimation{}
	haveHeader := false
	needHeader := func(h ChunkHeader) bool {
		if !haveHeader {
			d.warnf(h, "channel before the compressed animation header, skipping")
		}
		return haveHeader
	}
	err := d.walk(end, handlers{
		ChunkCompressedAnimationHeader: func(h ChunkHeader) error {
			var w wireCompressedAnimationHeader
			if err := d.r.Read(&w); err != nil {
				return err
			}
			a.Header = CompressedAnimationHeader{
				Version:       w.Version,
				Name:          fixedString(w.Name[:]),
				HierarchyName: fixedString(w.HierarchyName[:]),
				NumFrames:     w.NumFrames,
				FrameRate:     w.FrameRate,
				Flavor:        w.Flavor,
			}
			haveHeader = true
			return nil
		},
		ChunkCompressedAnimationChannel: func(h ChunkHeader) error {
			if !needHeader(h) {
				return nil
			}
			switch a.Header.Flavor {
			case FlavorTimeCoded:
				c, err := d.readTimeCodedChannel()
				if err != nil {
					return err
				}
				a.TimeCodedChannels = append(a.TimeCodedChannels, c)
			case FlavorAdaptiveDelta:
				c, err := d.readAdaptiveDeltaChannel()
				if err != nil {
					return err
				}
				a.AdaptiveDeltaChannels = append(a.AdaptiveDeltaChannels, c)
			default:
				d.warnf(h, "unknown compressed animation flavor %d, skipping", a.Header.Flavor)
			}
			return nil
		},
		ChunkCompressedBitChannel: func(h ChunkHeader) error {
			c, err := d.readTimeCodedBitChannel()
			if err != nil {
				return err
			}
			a.BitChannels = append(a.BitChannels, c)
			return nil
		},
		ChunkCompressedMotionChannel: func(h ChunkHeader) error {
			c, err := d.readMotionChannel(h)
			if err != nil {
				return err
			}
			a.MotionChannels = append(a.MotionChannels, c)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
