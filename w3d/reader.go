// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

const (
	StringLength      = 16
	LargeStringLength = StringLength * 2

	chunkHeaderSize = 8
	chunkSizeMask   = 0x7FFFFFFF // the top bit flags "contains sub chunks" and is not part of the size
)

// Reader decodes little endian W3D primitives from an in memory buffer.
type Reader struct {
	r *bytes.Reader
}

func NewReader(data []byte) *Reader {
	return &Reader{bytes.NewReader(data)}
}

// Pos returns the current offset into the buffer.
func (q *Reader) Pos() int64 {
	return q.r.Size() - int64(q.r.Len())
}

// Size returns the length of the whole buffer.
func (q *Reader) Size() int64 {
	return q.r.Size()
}

// Seek moves to the absolute offset off.
func (q *Reader) Seek(off int64) {
	q.r.Seek(off, io.SeekStart)
}

// Read fills data, which must be a fixed size value or a slice of them.
func (q *Reader) Read(data interface{}) error {
	pos := q.Pos()
	if err := binary.Read(q.r, binary.LittleEndian, data); err != nil {
		return errors.Wrapf(ErrUnexpectedEnd, "need %d bytes at offset %d, have %d",
			binary.Size(data), pos, q.Size()-pos)
	}
	return nil
}

func (q *Reader) ReadInt8() (int8, error) {
	var r int8
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadUint8() (uint8, error) {
	var r uint8
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadInt16() (int16, error) {
	var r int16
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadUint16() (uint16, error) {
	var r uint16
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadInt32() (int32, error) {
	var r int32
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadUint32() (uint32, error) {
	var r uint32
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadFloat32() (float32, error) {
	var r float32
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadVec2() (vec.Vec2, error) {
	var r vec.Vec2
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadVec3() (vec.Vec3, error) {
	var r vec.Vec3
	err := q.Read(&r)
	return r, err
}

func (q *Reader) ReadVec4() (vec.Vec4, error) {
	var r vec.Vec4
	err := q.Read(&r)
	return r, err
}

// wireQuat is the on disk order of a quaternion.
type wireQuat struct {
	X, Y, Z, W float32
}

func (w wireQuat) quat() vec.Quat {
	return vec.Quat{W: w.W, X: w.X, Y: w.Y, Z: w.Z}
}

func (q *Reader) ReadQuat() (vec.Quat, error) {
	var r wireQuat
	err := q.Read(&r)
	return r.quat(), err
}

// ReadFixedString reads a 16 byte name field.
func (q *Reader) ReadFixedString() (string, error) {
	var b [StringLength]byte
	if err := q.Read(&b); err != nil {
		return "", err
	}
	return fixedString(b[:]), nil
}

// ReadLongFixedString reads a 32 byte name field.
func (q *Reader) ReadLongFixedString() (string, error) {
	var b [LargeStringLength]byte
	if err := q.Read(&b); err != nil {
		return "", err
	}
	return fixedString(b[:]), nil
}

// ReadString reads a NUL terminated string of any length.
func (q *Reader) ReadString() (string, error) {
	pos := q.Pos()
	var buf []byte
	for {
		c, err := q.r.ReadByte()
		if err != nil {
			return "", errors.Wrapf(ErrUnexpectedEnd, "unterminated string at offset %d", pos)
		}
		if c == 0 {
			return decodeLatin1(buf), nil
		}
		buf = append(buf, c)
	}
}

// ReadChunkHeader reads the 8 byte tag/size pair in front of every chunk.
func (q *Reader) ReadChunkHeader() (ChunkHeader, error) {
	var h struct {
		Tag  uint32
		Size uint32
	}
	pos := q.Pos()
	if err := q.Read(&h); err != nil {
		return ChunkHeader{}, err
	}
	size := h.Size & chunkSizeMask
	return ChunkHeader{
		Tag:    h.Tag,
		Size:   size,
		Offset: pos,
		End:    q.Pos() + int64(size),
	}, nil
}

// fixedString cuts a padded name field at the first NUL and drops everything from
// the first backslash on. Exporters left resource path junk behind some names.
func fixedString(b []byte) string {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	if n := bytes.IndexByte(b, '\\'); n >= 0 {
		b = b[:n]
	}
	return decodeLatin1(b)
}

func decodeLatin1(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// readList reads as many whole T as fit between the cursor and end.
// A trailing partial element is left for the caller's seek to skip.
func readList[T any](q *Reader, end int64) ([]T, error) {
	var zero T
	size := int64(binary.Size(zero))
	n := (end - q.Pos()) / size
	if n <= 0 {
		return nil, nil
	}
	out := make([]T, n)
	if err := q.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}

// readFixedList reads exactly n values of T.
func readFixedList[T any](q *Reader, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	if need := int64(n) * int64(binary.Size(zero)); need > q.Size()-q.Pos() {
		return nil, q.short(need)
	}
	out := make([]T, n)
	if err := q.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}

// short reports that need bytes are not available at the cursor.
func (q *Reader) short(need int64) error {
	return errors.Wrapf(ErrUnexpectedEnd, "need %d bytes at offset %d, have %d",
		need, q.Pos(), q.Size()-q.Pos())
}
