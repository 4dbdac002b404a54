// SPDX-License-Identifier: GPL-2.0-or-later

// Package big reads BIG archives as used by the SAGE engine games.
package big

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const headerSize = 16

// header is followed by Count entries. Only ArchiveSize is little endian.
type header struct {
	ID          [4]byte
	ArchiveSize uint32
	Count       uint32
	HeaderEnd   uint32
}

func parseHeader(b []byte) header {
	var h header
	copy(h.ID[:], b)
	h.ArchiveSize = binary.LittleEndian.Uint32(b[4:])
	h.Count = binary.BigEndian.Uint32(b[8:])
	h.HeaderEnd = binary.BigEndian.Uint32(b[12:])
	return h
}

type entry struct {
	Offset uint32
	Size   uint32
	// followed by a NUL terminated name
}

var (
	ErrNotBig = errors.New("not a BIG archive")
)

type Archive struct {
	r     io.ReaderAt
	c     io.Closer
	files map[string]*qfile
	names []string
	name  string
}

type qfile struct {
	offset int64
	size   int64
}

// key normalizes entry names. Lookups ignore case and the kind of slash.
func key(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "/", "\\"))
}

// Open returns a io.SectionReader or os.ErrNotExist if the archive has no entry
// with the provided name.
func (a *Archive) Open(name string) (*io.SectionReader, error) {
	q, ok := a.files[key(name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(a.r, q.offset, q.size), nil
}

func (a *Archive) ReadFile(name string) ([]byte, error) {
	f, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, f.Size())
	if _, err := io.ReadFull(f, b); err != nil {
		return nil, errors.Wrapf(err, "%s: reading %s", a.name, name)
	}
	return b, nil
}

// Names returns the entry names as stored, in archive order.
func (a *Archive) Names() []string {
	return append([]string(nil), a.names...)
}

// Sorted returns the entry names sorted case insensitively.
func (a *Archive) Sorted() []string {
	n := a.Names()
	sort.Slice(n, func(i, j int) bool { return key(n[i]) < key(n[j]) })
	return n
}

func (a *Archive) String() string {
	return a.name
}

func (a *Archive) Close() error {
	if a.c == nil {
		return nil
	}
	return a.c.Close()
}

func (a *Archive) init(size int64) error {
	var b [headerSize]byte
	if size < headerSize {
		return ErrNotBig
	}
	if _, err := a.r.ReadAt(b[:], 0); err != nil {
		return errors.Wrap(err, "reading header")
	}
	h := parseHeader(b[:])
	if !bytes.Equal(h.ID[:], []byte("BIGF")) && !bytes.Equal(h.ID[:], []byte("BIG4")) {
		return ErrNotBig
	}
	if int64(h.HeaderEnd) > size || h.HeaderEnd < headerSize {
		return errors.Wrapf(ErrNotBig, "directory ends at %d past the archive size %d", h.HeaderEnd, size)
	}
	// a directory entry needs at least 9 bytes
	if int64(h.Count)*9 > int64(h.HeaderEnd) {
		return errors.Wrapf(ErrNotBig, "%d entries do not fit a directory of %d bytes", h.Count, h.HeaderEnd)
	}
	dir := make([]byte, int64(h.HeaderEnd)-headerSize)
	if _, err := a.r.ReadAt(dir, headerSize); err != nil {
		return errors.Wrap(err, "reading directory")
	}
	r := bytes.NewReader(dir)
	a.files = make(map[string]*qfile, h.Count)
	a.names = make([]string, 0, h.Count)
	for i := uint32(0); i < h.Count; i++ {
		var e entry
		if err := binary.Read(r, binary.BigEndian, &e); err != nil {
			return errors.Wrapf(err, "directory entry %d", i)
		}
		var name []byte
		for {
			c, err := r.ReadByte()
			if err != nil {
				return errors.Wrapf(err, "name of directory entry %d", i)
			}
			if c == 0 {
				break
			}
			name = append(name, c)
		}
		if int64(e.Offset)+int64(e.Size) > size {
			return errors.Errorf("entry %s runs past the end of the archive", name)
		}
		n := string(name)
		// later entries shadow earlier ones
		if _, dup := a.files[key(n)]; !dup {
			a.names = append(a.names, n)
		}
		a.files[key(n)] = &qfile{offset: int64(e.Offset), size: int64(e.Size)}
	}
	return nil
}

// NewReader reads an archive of size bytes from r.
func NewReader(r io.ReaderAt, size int64, name string) (*Archive, error) {
	a := &Archive{r: r, name: name}
	if err := a.init(size); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return a, nil
}

// OpenFile opens the archive stored in the file name.
func OpenFile(name string) (*Archive, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	a, err := NewReader(f, fi.Size(), name)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.c = f
	return a, nil
}
