// SPDX-License-Identifier: GPL-2.0-or-later

// Package texture finds the image files W3D materials refer to.
package texture

import (
	"sort"
	"strings"

	"github.com/ClementJ18/finalBIGv2-sub000/filesystem"
	"github.com/ClementJ18/finalBIGv2-sub000/w3d"
)

// Preference when several files share a stem. Games replace .tga textures by .dds.
var rank = map[string]int{
	".dds": 0,
	".tga": 1,
	".bmp": 2,
	".png": 3,
	".jpg": 4,
}

// Index maps lowercase texture names and stems to source names.
type Index struct {
	byBase map[string]string // "foo.tga" -> "Art/Textures/Foo.tga"
	byStem map[string]string // "foo" -> best ranked of the same stem
}

func stem(name string) string {
	return strings.ToLower(filesystem.StripExt(filesystem.Base(name)))
}

// NewIndex indexes all names with an image extension. Earlier names win over
// later names of the same base name.
func NewIndex(names []string) *Index {
	idx := &Index{
		byBase: make(map[string]string),
		byStem: make(map[string]string),
	}
	for _, n := range names {
		r, ok := rank[strings.ToLower(filesystem.Ext(n))]
		if !ok {
			continue
		}
		base := strings.ToLower(filesystem.Base(n))
		if _, ok := idx.byBase[base]; !ok {
			idx.byBase[base] = n
		}
		s := stem(n)
		if old, ok := idx.byStem[s]; !ok || r < rank[strings.ToLower(filesystem.Ext(old))] {
			idx.byStem[s] = n
		}
	}
	return idx
}

// Resolve returns the source name holding texture tex. An exact base name match
// wins over a file of the same stem.
func (idx *Index) Resolve(tex string) (string, bool) {
	if n, ok := idx.byBase[strings.ToLower(filesystem.Base(tex))]; ok {
		return n, true
	}
	n, ok := idx.byStem[stem(tex)]
	return n, ok
}

func (idx *Index) Len() int {
	return len(idx.byBase)
}

// Refs returns the texture file names used by m, sorted and without duplicates.
// Shader material string properties with "texture" in their name count as well.
func Refs(m *w3d.Model) []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(f string) {
		if f == "" || seen[strings.ToLower(f)] {
			return
		}
		seen[strings.ToLower(f)] = true
		refs = append(refs, f)
	}
	addAll := func(ts []*w3d.Texture) {
		for _, t := range ts {
			add(t.File)
		}
	}
	for _, me := range m.Meshes {
		addAll(me.Textures)
		for _, p := range me.Prelits() {
			addAll(p.Textures)
		}
		for _, sm := range me.ShaderMaterials {
			for _, p := range sm.Properties {
				if v, ok := p.Value.(w3d.StringValue); ok && strings.Contains(strings.ToLower(p.Name), "texture") {
					add(string(v))
				}
			}
		}
	}
	sort.Strings(refs)
	return refs
}
