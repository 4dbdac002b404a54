// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ClementJ18/finalBIGv2-sub000/batch"
	"github.com/ClementJ18/finalBIGv2-sub000/conlog"
	"github.com/ClementJ18/finalBIGv2-sub000/filesystem"
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
	"github.com/ClementJ18/finalBIGv2-sub000/texture"
	"github.com/ClementJ18/finalBIGv2-sub000/w3d"
)

type textureReport struct {
	File   string
	Source string // empty if not found
	Info   texture.Info
	Err    error
}

type fileReport struct {
	batch.Result
	Problems []error
	Textures []textureReport
}

func newReport(r batch.Result, idx *texture.Index, validate bool) *fileReport {
	rep := &fileReport{Result: r}
	m, ok := r.Model.(*w3d.Model)
	if !ok {
		return rep
	}
	if validate {
		rep.Problems = w3d.Validate(m)
	}
	if idx != nil {
		for _, f := range texture.Refs(m) {
			rep.Textures = append(rep.Textures, resolve(idx, f))
		}
	}
	return rep
}

func resolve(idx *texture.Index, file string) textureReport {
	t := textureReport{File: file}
	src, ok := idx.Resolve(file)
	if !ok {
		return t
	}
	t.Source = src
	data, err := filesystem.ReadFile(src)
	if err != nil {
		t.Err = err
		return t
	}
	t.Info, t.Err = texture.Probe(src, data)
	return t
}

func (r *fileReport) decoded() *w3d.Model {
	m, _ := r.Model.(*w3d.Model)
	return m
}

// log prints the decode diagnostics, info level only in verbose mode.
func (r *fileReport) log() {
	if r.Err != nil {
		conlog.Printf("%s: %v", r.Name, r.Err)
		return
	}
	m := r.decoded()
	if m == nil {
		return
	}
	for _, d := range m.Diagnostics {
		if d.Level == w3d.Info {
			conlog.DPrintf("%s: %v", r.Name, d)
		} else {
			conlog.Printf("%s: %v", r.Name, d)
		}
	}
}

func animationKind(a w3d.AnimationData) string {
	switch a.(type) {
	case *w3d.Animation:
		return "uncompressed"
	case *w3d.CompressedAnimation:
		return "compressed"
	}
	return ""
}

func writeText(w io.Writer, reports []*fileReport) error {
	var b strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&b, "%s\n", r.Name)
		if r.Err != nil {
			fmt.Fprintf(&b, "  error: %v\n", r.Err)
			continue
		}
		fmt.Fprintf(&b, "  model %s, bounds %v %v\n", r.Model.Name(), r.Model.Mins(), r.Model.Maxs())
		if m := r.decoded(); m != nil {
			textW3D(&b, m)
		}
		for _, p := range r.Problems {
			fmt.Fprintf(&b, "  problem: %v\n", p)
		}
		for _, t := range r.Textures {
			switch {
			case t.Source == "":
				fmt.Fprintf(&b, "  texture %s: missing\n", t.File)
			case t.Err != nil:
				fmt.Fprintf(&b, "  texture %s: %s: %v\n", t.File, t.Source, t.Err)
			default:
				fmt.Fprintf(&b, "  texture %s: %s %s %dx%d\n", t.File, t.Source, t.Info.Format, t.Info.Width, t.Info.Height)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func textW3D(b *strings.Builder, m *w3d.Model) {
	for _, me := range m.Meshes {
		fmt.Fprintf(b, "  mesh %s: %d vertices, %d triangles, %d textures\n",
			me.Identifier(), len(me.Vertices), len(me.Triangles), len(me.Textures))
	}
	if h := m.Hierarchy; h != nil {
		fmt.Fprintf(b, "  hierarchy %s: %d pivots\n", h.Name(), len(h.Pivots))
	}
	if h := m.HLod; h != nil {
		fmt.Fprintf(b, "  hlod %s (%s): %d lods\n", h.ModelName(), h.HierarchyName(), len(h.LodArrays))
	}
	if a := m.Animation; a != nil {
		fmt.Fprintf(b, "  %s animation %s (%s): %d frames at %d fps, %d channels\n",
			animationKind(a), a.Name(), a.HierarchyName(), a.NumFrames(), a.FrameRate(), a.NumChannels())
	}
	for _, c := range m.CollisionBoxes {
		fmt.Fprintf(b, "  box %s: center %v extent %v\n", c.FullName, c.Center, c.Extent)
	}
	for _, z := range m.Dazzles {
		fmt.Fprintf(b, "  dazzle %s: %s\n", z.FullName, z.TypeName)
	}
	if n := len(m.Diagnostics); n > 0 {
		fmt.Fprintf(b, "  %d diagnostics, %d warnings\n", n, len(m.Warnings()))
	}
}

func vector(v vec.Vec3) []interface{} {
	return []interface{}{v.X, v.Y, v.Z}
}

func (r *fileReport) value() map[string]interface{} {
	v := map[string]interface{}{
		"id":   r.ID.String(),
		"name": r.Name,
	}
	if r.Err != nil {
		v["error"] = r.Err.Error()
		return v
	}
	v["model"] = r.Model.Name()
	v["mins"] = vector(r.Model.Mins())
	v["maxs"] = vector(r.Model.Maxs())
	if m := r.decoded(); m != nil {
		w3dValue(v, m)
	}
	if len(r.Problems) > 0 {
		ps := make([]interface{}, 0, len(r.Problems))
		for _, p := range r.Problems {
			ps = append(ps, p.Error())
		}
		v["problems"] = ps
	}
	if len(r.Textures) > 0 {
		ts := make([]interface{}, 0, len(r.Textures))
		for _, t := range r.Textures {
			tv := map[string]interface{}{"file": t.File, "found": t.Source != ""}
			if t.Source != "" {
				tv["source"] = t.Source
			}
			if t.Err != nil {
				tv["error"] = t.Err.Error()
			} else if t.Info.Format != "" {
				tv["format"] = t.Info.Format
				tv["width"] = t.Info.Width
				tv["height"] = t.Info.Height
			}
			ts = append(ts, tv)
		}
		v["textures"] = ts
	}
	return v
}

func w3dValue(v map[string]interface{}, m *w3d.Model) {
	meshes := make([]interface{}, 0, len(m.Meshes))
	for _, me := range m.Meshes {
		meshes = append(meshes, map[string]interface{}{
			"id":        me.Identifier(),
			"vertices":  len(me.Vertices),
			"triangles": len(me.Triangles),
			"textures":  len(me.Textures),
			"skin":      me.Header.Skin(),
		})
	}
	v["meshes"] = meshes
	if h := m.Hierarchy; h != nil {
		v["hierarchy"] = map[string]interface{}{"name": h.Name(), "pivots": len(h.Pivots)}
	}
	if h := m.HLod; h != nil {
		v["hlod"] = map[string]interface{}{
			"name":      h.ModelName(),
			"hierarchy": h.HierarchyName(),
			"lods":      len(h.LodArrays),
		}
	}
	if a := m.Animation; a != nil {
		v["animation"] = map[string]interface{}{
			"kind":      animationKind(a),
			"name":      a.Name(),
			"hierarchy": a.HierarchyName(),
			"frames":    a.NumFrames(),
			"rate":      a.FrameRate(),
			"channels":  a.NumChannels(),
		}
	}
	if len(m.CollisionBoxes) > 0 {
		bs := make([]interface{}, 0, len(m.CollisionBoxes))
		for _, c := range m.CollisionBoxes {
			bs = append(bs, c.FullName)
		}
		v["boxes"] = bs
	}
	if len(m.Dazzles) > 0 {
		ds := make([]interface{}, 0, len(m.Dazzles))
		for _, z := range m.Dazzles {
			ds = append(ds, z.FullName)
		}
		v["dazzles"] = ds
	}
	if len(m.Diagnostics) > 0 {
		ds := make([]interface{}, 0, len(m.Diagnostics))
		for _, d := range m.Diagnostics {
			ds = append(ds, d.String())
		}
		v["diagnostics"] = ds
	}
}

func writeJSON(w io.Writer, reports []*fileReport) error {
	files := make([]interface{}, 0, len(reports))
	for _, r := range reports {
		files = append(files, r.value())
	}
	s, err := structpb.NewStruct(map[string]interface{}{"files": files})
	if err != nil {
		return err
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
