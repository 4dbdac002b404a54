// SPDX-License-Identifier: GPL-2.0-or-later

package batch

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
	"github.com/ClementJ18/finalBIGv2-sub000/model"
)

type fake struct{ name string }

func (f *fake) Name() string   { return f.name }
func (f *fake) Mins() vec.Vec3 { return vec.Vec3{} }
func (f *fake) Maxs() vec.Vec3 { return vec.Vec3{} }

func init() {
	model.Register(".batchtest", func(name string, data []byte) (model.Model, error) {
		if len(data) == 0 {
			return nil, errors.New("empty")
		}
		return &fake{string(data)}, nil
	})
}

func read(name string) ([]byte, error) {
	switch {
	case strings.HasPrefix(name, "missing"):
		return nil, os.ErrNotExist
	case strings.HasPrefix(name, "empty"):
		return nil, nil
	}
	return []byte(strings.ToUpper(name)), nil
}

func TestRun(t *testing.T) {
	names := []string{"a.batchtest", "missing.batchtest", "b.batchtest", "empty.batchtest", "c.txt"}
	var done atomic.Int32
	cfg := Config{Read: read, Workers: 3, Done: func(Result) { done.Add(1) }}
	res := Run(context.Background(), cfg, names)
	if len(res) != len(names) {
		t.Fatalf("len(results) = %d want %d", len(res), len(names))
	}
	if done.Load() != int32(len(names)) {
		t.Errorf("Done called %d times want %d", done.Load(), len(names))
	}
	seen := make(map[uuid.UUID]bool)
	for i, r := range res {
		if r.Name != names[i] {
			t.Errorf("results[%d].Name = %q want %q", i, r.Name, names[i])
		}
		if r.ID.Version() != 7 {
			t.Errorf("results[%d].ID version = %d want 7", i, r.ID.Version())
		}
		if seen[r.ID] {
			t.Errorf("duplicate id %v", r.ID)
		}
		seen[r.ID] = true
	}
	if res[0].Err != nil || res[0].Model.Name() != "A.BATCHTEST" {
		t.Errorf("results[0] = %+v", res[0])
	}
	if !errors.Is(res[1].Err, os.ErrNotExist) {
		t.Errorf("results[1].Err = %v want ErrNotExist", res[1].Err)
	}
	if res[3].Err == nil || res[4].Err == nil {
		t.Errorf("expected errors for empty and unknown format")
	}
	if got := len(Failed(res)); got != 3 {
		t.Errorf("len(Failed) = %d want 3", got)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := Run(ctx, Config{Read: read}, []string{"a.batchtest", "b.batchtest"})
	for i, r := range res {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v want Canceled", i, r.Err)
		}
	}
}
