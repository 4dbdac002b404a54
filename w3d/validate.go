// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"fmt"
	"unicode/utf8"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

const (
	// minimum cosine between a stored face normal and the one of its winding
	normalTolerance = 0.99
	// slack of the bounding sphere test, relative to the radius
	sphereTolerance = 1e-3
)

// faceNormal returns the unit normal of the counter clockwise face a, b, c and
// false for degenerate faces.
func faceNormal(a, b, c vec.Vec3) (vec.Vec3, bool) {
	n := vec.Cross(vec.Sub(b, a), vec.Sub(c, a))
	if n.Length() == 0 {
		return vec.Vec3{}, false
	}
	return n.Normalize(), true
}

// Problem is a semantic error found by Validate.
type Problem struct {
	Object  string
	Message string
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.Object, p.Message)
}

// Validate checks the consistency rules Decode does not enforce: name lengths of the
// fixed width fields, index bounds and non empty animations.
func Validate(m *Model) []error {
	var errs []error
	add := func(obj, format string, v ...interface{}) {
		errs = append(errs, Problem{Object: obj, Message: fmt.Sprintf(format, v...)})
	}
	name := func(obj, n string, max int) {
		if utf8.RuneCountInString(n) >= max {
			add(obj, "name %q exceeds max length of %d", n, max)
		}
	}

	for _, me := range m.Meshes {
		obj := "mesh " + me.Identifier()
		name(obj, me.Header.MeshName, StringLength)
		name(obj, me.Header.ContainerName, StringLength)
		nv := uint32(len(me.Vertices))
		for i, t := range me.Triangles {
			for _, id := range t.VertIDs {
				if id >= nv {
					add(obj, "triangle %d references vertex %d of %d", i, id, nv)
					break
				}
			}
			if !t.Surface.Valid() {
				add(obj, "triangle %d has invalid surface type %d", i, uint32(t.Surface))
			}
			if !bounded(t.VertIDs, nv) || t.Normal == (vec.Vec3{}) {
				continue
			}
			v := me.Vertices
			if n, ok := faceNormal(v[t.VertIDs[0]], v[t.VertIDs[1]], v[t.VertIDs[2]]); ok {
				stored := t.Normal
				if vec.Dot(n, stored.Normalize()) < normalTolerance {
					add(obj, "triangle %d normal %v does not match its winding %v", i, t.Normal, n)
				}
			}
		}
		if r := me.Header.SphRadius; r > 0 {
			for i, p := range me.Vertices {
				d := vec.Sub(p, me.Header.SphCenter)
				if d.Length() > r*(1+sphereTolerance) {
					add(obj, "vertex %d lies outside the bounding sphere of radius %g", i, r)
					break
				}
			}
		}
		if me.Header.VertCount != nv {
			add(obj, "header declares %d vertices, found %d", me.Header.VertCount, nv)
		}
		if me.Header.FaceCount != uint32(len(me.Triangles)) {
			add(obj, "header declares %d triangles, found %d", me.Header.FaceCount, len(me.Triangles))
		}
	}

	if h := m.Hierarchy; h != nil {
		obj := "hierarchy " + h.Name()
		name(obj, h.Name(), StringLength)
		n := int32(len(h.Pivots))
		for i, p := range h.Pivots {
			name(obj, p.Name, StringLength)
			if p.ParentID != RootPivot && (p.ParentID < 0 || p.ParentID >= n) {
				add(obj, "pivot %d has parent %d of %d", i, p.ParentID, n)
			}
		}
	}

	if hl := m.HLod; hl != nil {
		obj := "hlod " + hl.ModelName()
		for _, a := range hl.LodArrays {
			for _, s := range a.SubObjects {
				name(obj, s.Identifier, LargeStringLength)
			}
		}
	}

	if a := m.Animation; a != nil {
		obj := "animation " + a.Name()
		if a.NumChannels() == 0 {
			add(obj, "does not contain any animation data")
		}
		name(obj, a.Name(), StringLength)
		name(obj, a.HierarchyName(), StringLength)
	}

	for _, b := range m.CollisionBoxes {
		name("box "+b.FullName, b.FullName, LargeStringLength)
	}
	return errs
}

func bounded(ids [3]uint32, n uint32) bool {
	return ids[0] < n && ids[1] < n && ids[2] < n
}
