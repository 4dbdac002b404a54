// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"bytes"
	"encoding/binary"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/ClementJ18/finalBIGv2-sub000/filesystem"
)

type Info struct {
	Format string
	Width  int
	Height int
}

type ddsHeader struct {
	Magic       [4]byte
	Size        uint32 // 124
	Flags       uint32
	Height      uint32
	Width       uint32
	PitchOrSize uint32
	Depth       uint32
	MipMapCount uint32
}

var ddsMagic = [4]byte{'D', 'D', 'S', ' '}

// Probe reads the image header of data. The extension of name selects the format
// since tga has no magic to sniff.
func Probe(name string, data []byte) (Info, error) {
	var (
		cfg    image.Config
		format string
		err    error
	)
	switch strings.ToLower(filesystem.Ext(name)) {
	case ".dds":
		return probeDDS(name, data)
	case ".tga":
		format = "tga"
		cfg, err = tga.DecodeConfig(bytes.NewReader(data))
	case ".bmp":
		format = "bmp"
		cfg, err = bmp.DecodeConfig(bytes.NewReader(data))
	default:
		cfg, format, err = image.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return Info{}, errors.Wrapf(err, "texture: probe %s", name)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func probeDDS(name string, data []byte) (Info, error) {
	var h ddsHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return Info{}, errors.Wrapf(err, "texture: probe %s", name)
	}
	if h.Magic != ddsMagic || h.Size != 124 {
		return Info{}, errors.Errorf("texture: probe %s: not a dds file", name)
	}
	return Info{Format: "dds", Width: int(h.Width), Height: int(h.Height)}, nil
}
