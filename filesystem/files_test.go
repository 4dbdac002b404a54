// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeBig stores a single entry archive.
func writeBig(t *testing.T, name, entry, data string) {
	t.Helper()
	dirEnd := 16 + 8 + len(entry) + 1
	var b bytes.Buffer
	b.WriteString("BIG4")
	binary.Write(&b, binary.LittleEndian, uint32(dirEnd+len(data)))
	binary.Write(&b, binary.BigEndian, uint32(1))
	binary.Write(&b, binary.BigEndian, uint32(dirEnd))
	binary.Write(&b, binary.BigEndian, uint32(dirEnd))
	binary.Write(&b, binary.BigEndian, uint32(len(data)))
	b.WriteString(entry)
	b.WriteByte(0)
	b.WriteString(data)
	writeFile(t, name, b.String())
}

func TestFilesystemOrder(t *testing.T) {
	defer Reset()
	root := t.TempDir()
	base := filepath.Join(root, "base")
	mod := filepath.Join(root, "mod")
	writeFile(t, filepath.Join(base, "doc1.txt"), "base doc1")
	writeFile(t, filepath.Join(base, "art", "doc2.txt"), "base doc2")
	writeFile(t, filepath.Join(mod, "doc1.txt"), "mod doc1")
	writeBig(t, filepath.Join(root, "patch.big"), "Art\\Doc2.txt", "patched doc2")

	if err := UseDir(base); err != nil {
		t.Fatalf("UseDir(base): %v", err)
	}
	if err := UseDir(mod); err != nil {
		t.Fatalf("UseDir(mod): %v", err)
	}
	if err := UseArchive(filepath.Join(root, "patch.big")); err != nil {
		t.Fatalf("UseArchive: %v", err)
	}
	tests := []struct {
		name string
		want string
	}{
		{"doc1.txt", "mod doc1"},
		{"art\\doc2.txt", "patched doc2"},
	}
	for _, tc := range tests {
		b, err := ReadFile(tc.name)
		if err != nil {
			t.Errorf("ReadFile(%q): %v", tc.name, err)
			continue
		}
		if string(b) != tc.want {
			t.Errorf("ReadFile(%q) = %q want %q", tc.name, b, tc.want)
		}
	}
	if _, err := ReadFile("nothing.txt"); !os.IsNotExist(err) {
		t.Errorf("ReadFile(nothing.txt) = %v want not exist", err)
	}
	want := []string{"Art\\Doc2.txt", "doc1.txt"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v want %v", got, want)
	}
	if len(Sources()) != 3 {
		t.Errorf("len(Sources()) = %d want 3", len(Sources()))
	}
}

func TestUseDirFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "file")
	writeFile(t, name, "x")
	if err := UseDir(name); err == nil {
		Reset()
		t.Errorf("UseDir(file) succeeded")
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path, ext, stripped, base string
	}{
		{"art\\w3d\\unit.w3d", ".w3d", "art\\w3d\\unit", "unit.w3d"},
		{"maps/start", "", "maps/start", "start"},
		{"dir.d/file", "", "dir.d/file", "file"},
		{"a.tar.gz", ".gz", "a.tar", "a.tar.gz"},
	}
	for _, tc := range tests {
		if got := Ext(tc.path); got != tc.ext {
			t.Errorf("Ext(%q) = %q want %q", tc.path, got, tc.ext)
		}
		if got := StripExt(tc.path); got != tc.stripped {
			t.Errorf("StripExt(%q) = %q want %q", tc.path, got, tc.stripped)
		}
		if got := Base(tc.path); got != tc.base {
			t.Errorf("Base(%q) = %q want %q", tc.path, got, tc.base)
		}
	}
}
