// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"bytes"
	"encoding/binary"
	"image"
	"reflect"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ClementJ18/finalBIGv2-sub000/w3d"
)

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

func makeTGA(w, h int) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, tgaHeader{
		ImageType: 2,
		Width:     uint16(w),
		Height:    uint16(h),
		PixelSize: 24,
	})
	b.Write(make([]byte, w*h*3))
	return b.Bytes()
}

func TestProbe(t *testing.T) {
	var bm bytes.Buffer
	if err := bmp.Encode(&bm, image.NewNRGBA(image.Rect(0, 0, 3, 5))); err != nil {
		t.Fatal(err)
	}
	var dds bytes.Buffer
	binary.Write(&dds, binary.LittleEndian, ddsHeader{Magic: ddsMagic, Size: 124, Height: 64, Width: 128})

	tests := []struct {
		name string
		data []byte
		want Info
	}{
		{"a.tga", makeTGA(4, 2), Info{"tga", 4, 2}},
		{"b.BMP", bm.Bytes(), Info{"bmp", 3, 5}},
		{"c.dds", dds.Bytes(), Info{"dds", 128, 64}},
	}
	for _, tc := range tests {
		got, err := Probe(tc.name, tc.data)
		if err != nil {
			t.Errorf("Probe(%s): %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Probe(%s) = %+v want %+v", tc.name, got, tc.want)
		}
	}
	if _, err := Probe("x.dds", []byte("DDS ")); err == nil {
		t.Errorf("Probe(short dds) succeeded")
	}
	if _, err := Probe("x.dds", make([]byte, 32)); err == nil {
		t.Errorf("Probe(bad magic) succeeded")
	}
}

func TestIndex(t *testing.T) {
	idx := NewIndex([]string{
		"Art/Textures/Rock.tga",
		"Art/Textures/rock.dds",
		"art\\textures\\Tree.TGA",
		"Art/W3D/tree.w3d",
		"Art/Textures/Sky.bmp",
	})
	if idx.Len() != 4 {
		t.Errorf("Len = %d want 4", idx.Len())
	}
	tests := []struct {
		tex  string
		want string
		ok   bool
	}{
		{"ROCK.TGA", "Art/Textures/Rock.tga", true},
		{"rock.psd", "Art/Textures/rock.dds", true},
		{"tree.tga", "art\\textures\\Tree.TGA", true},
		{"sky.tga", "Art/Textures/Sky.bmp", true},
		{"cloud.tga", "", false},
	}
	for _, tc := range tests {
		got, ok := idx.Resolve(tc.tex)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Resolve(%q) = %q, %v want %q, %v", tc.tex, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRefs(t *testing.T) {
	m := &w3d.Model{Meshes: []*w3d.Mesh{
		{
			Textures: []*w3d.Texture{{File: "b.tga"}, {File: "a.tga"}},
			ShaderMaterials: []*w3d.ShaderMaterial{{Properties: []*w3d.ShaderMaterialProperty{
				{Name: "DiffuseTexture", Value: w3d.StringValue("c.dds")},
				{Name: "Technique", Value: w3d.StringValue("skip")},
			}}},
		},
		{
			Textures:     []*w3d.Texture{{File: "B.TGA"}},
			PrelitVertex: &w3d.Prelit{Textures: []*w3d.Texture{{File: "d.tga"}}},
		},
	}}
	want := []string{"a.tga", "b.tga", "c.dds", "d.tga"}
	if got := Refs(m); !reflect.DeepEqual(got, want) {
		t.Errorf("Refs = %v want %v", got, want)
	}
}
