// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// channel types
const (
	ChannelX   = 0
	ChannelY   = 1
	ChannelZ   = 2
	ChannelXR  = 3
	ChannelYR  = 4
	ChannelZR  = 5
	ChannelQ   = 6
	ChannelVis = 15
)

// AnimationData is either *Animation or *CompressedAnimation.
type AnimationData interface {
	Name() string
	HierarchyName() string
	NumFrames() uint32
	FrameRate() uint32
	// NumChannels counts channels of every kind.
	NumChannels() int
	animationData()
}

type AnimationHeader struct {
	Version       Version
	Name          string
	HierarchyName string
	NumFrames     uint32
	FrameRate     uint32
}

type wireAnimationHeader struct {
	Version       Version
	Name          [StringLength]byte
	HierarchyName [StringLength]byte
	NumFrames     uint32
	FrameRate     uint32
}

// AnimationChannel holds one keyframe per frame in [FirstFrame, LastFrame].
// Quaternion channels fill Quats, all others Floats.
type AnimationChannel struct {
	FirstFrame uint16
	LastFrame  uint16
	VectorLen  uint16
	Type       uint16
	Pivot      uint16
	Unknown    uint16
	Floats     []float32
	Quats      []vec.Quat
}

// AnimationBitChannel holds one boolean per frame in [FirstFrame, LastFrame].
type AnimationBitChannel struct {
	FirstFrame uint16
	LastFrame  uint16
	Type       uint16
	Pivot      uint16
	Default    float32
	Data       []bool
}

type Animation struct {
	Header      AnimationHeader
	Channels    []*AnimationChannel
	BitChannels []*AnimationBitChannel
}

func (a *Animation) Name() string          { return a.Header.Name }
func (a *Animation) HierarchyName() string { return a.Header.HierarchyName }
func (a *Animation) NumFrames() uint32     { return a.Header.NumFrames }
func (a *Animation) FrameRate() uint32     { return a.Header.FrameRate }
func (a *Animation) NumChannels() int      { return len(a.Channels) + len(a.BitChannels) }
func (a *Animation) animationData()        {}

// frameCount returns the number of frames in [first, last], zero when last < first.
func frameCount(first, last uint16) int {
	if last < first {
		return 0
	}
	return int(last) - int(first) + 1
}

// unpackBits expands n booleans stored lowest bit first, 8 per byte.
func unpackBits(b []byte, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = b[i/8]&(1<<(i%8)) != 0
	}
	return out
}

func (d *decoder) readAnimationChannel() (*AnimationChannel, error) {
	var c AnimationChannel
	var hdr struct {
		FirstFrame, LastFrame, VectorLen, Type, Pivot, Unknown uint16
	}
	if err := d.r.Read(&hdr); err != nil {
		return nil, err
	}
	c.FirstFrame, c.LastFrame = hdr.FirstFrame, hdr.LastFrame
	c.VectorLen, c.Type = hdr.VectorLen, hdr.Type
	c.Pivot, c.Unknown = hdr.Pivot, hdr.Unknown
	n := frameCount(c.FirstFrame, c.LastFrame)
	if c.VectorLen == 1 {
		fs, err := readFixedList[float32](d.r, n)
		if err != nil {
			return nil, err
		}
		c.Floats = fs
		return &c, nil
	}
	ws, err := readFixedList[wireQuat](d.r, n)
	if err != nil {
		return nil, err
	}
	c.Quats = make([]vec.Quat, len(ws))
	for i, w := range ws {
		c.Quats[i] = w.quat()
	}
	return &c, nil
}

func (d *decoder) readAnimationBitChannel() (*AnimationBitChannel, error) {
	var hdr struct {
		FirstFrame, LastFrame, Type, Pivot uint16
		Default                            uint8
	}
	if err := d.r.Read(&hdr); err != nil {
		return nil, err
	}
	c := &AnimationBitChannel{
		FirstFrame: hdr.FirstFrame,
		LastFrame:  hdr.LastFrame,
		Type:       hdr.Type,
		Pivot:      hdr.Pivot,
		Default:    float32(hdr.Default) / 255,
	}
	n := frameCount(c.FirstFrame, c.LastFrame)
	b, err := readFixedList[byte](d.r, (n+7)/8)
	if err != nil {
		return nil, err
	}
	c.Data = unpackBits(b, n)
	return c, nil
}

func (d *decoder) readAnimation(end int64) (*Animation, error) {
	a := &Animation{}
	err := d.walk(end, handlers{
		ChunkAnimationHeader: func(h ChunkHeader) error {
			var w wireAnimationHeader
			if err := d.r.Read(&w); err != nil {
				return err
			}
			a.Header = AnimationHeader{
				Version:       w.Version,
				Name:          fixedString(w.Name[:]),
				HierarchyName: fixedString(w.HierarchyName[:]),
				NumFrames:     w.NumFrames,
				FrameRate:     w.FrameRate,
			}
			return nil
		},
		ChunkAnimationChannel: func(h ChunkHeader) error {
			c, err := d.readAnimationChannel()
			if err != nil {
				return err
			}
			a.Channels = append(a.Channels, c)
			return nil
		},
		ChunkAnimationBitChannel: func(h ChunkHeader) error {
			c, err := d.readAnimationBitChannel()
			if err != nil {
				return err
			}
			a.BitChannels = append(a.BitChannels, c)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
