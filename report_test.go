// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ClementJ18/finalBIGv2-sub000/batch"
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
	"github.com/ClementJ18/finalBIGv2-sub000/w3d"
)

func testResults() []batch.Result {
	m := &w3d.Model{
		Meshes: []*w3d.Mesh{{
			Header: w3d.MeshHeader{
				MeshName:      "BOX",
				ContainerName: "CRATE",
				MinCorner:     vec.Vec3{X: -1, Y: -1, Z: -1},
				MaxCorner:     vec.Vec3{X: 1, Y: 1, Z: 1},
			},
			Vertices: []vec.Vec3{{}, {X: 1}, {Y: 1}},
		}},
		Dazzles: []*w3d.Dazzle{{FullName: "CRATE.LIGHT", TypeName: "REN_BLUE"}},
	}
	return []batch.Result{
		{ID: uuid.Must(uuid.NewV7()), Name: "crate.w3d", Model: m},
		{ID: uuid.Must(uuid.NewV7()), Name: "broken.w3d", Err: errors.New("truncated")},
	}
}

func TestWriteText(t *testing.T) {
	var reports []*fileReport
	for _, r := range testResults() {
		reports = append(reports, newReport(r, nil, true))
	}
	var b bytes.Buffer
	if err := writeText(&b, reports); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"mesh CRATE.BOX: 3 vertices, 0 triangles",
		"dazzle CRATE.LIGHT: REN_BLUE",
		"broken.w3d\n  error: truncated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output misses %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var reports []*fileReport
	for _, r := range testResults() {
		reports = append(reports, newReport(r, nil, false))
	}
	var b bytes.Buffer
	if err := writeJSON(&b, reports); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Files []struct {
			Name   string
			Error  string
			Meshes []struct {
				ID       string
				Vertices float64
			}
			Maxs []float64
		}
	}
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, b.String())
	}
	if len(got.Files) != 2 {
		t.Fatalf("len(files) = %d want 2", len(got.Files))
	}
	f := got.Files[0]
	if f.Name != "crate.w3d" || len(f.Meshes) != 1 || f.Meshes[0].ID != "CRATE.BOX" || f.Meshes[0].Vertices != 3 {
		t.Errorf("files[0] = %+v", f)
	}
	if len(f.Maxs) != 3 || f.Maxs[0] != 1 {
		t.Errorf("maxs = %v want [1 1 1]", f.Maxs)
	}
	if got.Files[1].Error != "truncated" {
		t.Errorf("files[1].error = %q want truncated", got.Files[1].Error)
	}
}
