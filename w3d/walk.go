// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"fmt"

	"github.com/pkg/errors"
)

// ChunkHeader describes one chunk. End is the absolute offset just past its payload.
type ChunkHeader struct {
	Tag    uint32
	Size   uint32
	Offset int64 // of the header itself
	End    int64
}

// handler decodes one sub chunk. The reader sits at the start of the payload.
type handler func(h ChunkHeader) error

// handlers maps the chunk types legal in one nesting context to their decoders.
// A nil handler marks a chunk type that is known in the context but not decoded.
type handlers map[uint32]handler

// skipping adds the known but undecoded chunk types tags to t.
func (t handlers) skipping(tags []uint32) handlers {
	for _, tag := range tags {
		if _, ok := t[tag]; !ok {
			t[tag] = nil
		}
	}
	return t
}

type decoder struct {
	r     *Reader
	diags []Diagnostic
}

func (d *decoder) report(l Level, h ChunkHeader, format string, v ...interface{}) {
	d.diags = append(d.diags, Diagnostic{
		Level:   l,
		Offset:  h.Offset,
		Tag:     h.Tag,
		Message: fmt.Sprintf(format, v...),
	})
}

func (d *decoder) infof(h ChunkHeader, format string, v ...interface{}) {
	d.report(Info, h, format, v...)
}

func (d *decoder) warnf(h ChunkHeader, format string, v ...interface{}) {
	d.report(Warning, h, format, v...)
}

// walk decodes the sub chunks between the cursor and end. Chunks without a handler
// are skipped by their declared size. After every chunk the cursor is moved to the
// chunk's end, whatever its handler consumed. Less than a chunk header left before
// end is skipped with a warning.
func (d *decoder) walk(end int64, table handlers) error {
	return d.children(end, table, false)
}

// walkTop decodes the top level chunks of the whole buffer. Trailing bytes that
// cannot hold a chunk header are a truncation.
func (d *decoder) walkTop(table handlers) error {
	return d.children(d.r.Size(), table, true)
}

func (d *decoder) children(end int64, table handlers, top bool) error {
	for d.r.Pos() < end {
		start := d.r.Pos()
		if end-start < chunkHeaderSize && !top {
			d.diags = append(d.diags, Diagnostic{
				Level:   Warning,
				Offset:  start,
				Message: fmt.Sprintf("%d trailing bytes", end-start),
			})
			break
		}
		h, err := d.r.ReadChunkHeader()
		if err != nil {
			return err
		}
		if h.End > d.r.Size() {
			return &ChunkError{
				Tag:    h.Tag,
				Offset: start,
				Err: errors.Wrapf(ErrUnexpectedEnd, "declared size %d runs %d bytes past the end of data",
					h.Size, h.End-d.r.Size()),
			}
		}
		if h.End > end {
			d.warnf(h, "declared size %d overruns the parent chunk by %d bytes", h.Size, h.End-end)
			h.End = end
		}
		if fn, ok := table[h.Tag]; ok && fn != nil {
			if err := fn(h); err != nil {
				return &ChunkError{Tag: h.Tag, Offset: start, Err: err}
			}
		} else if ok {
			d.infof(h, "chunk type is not supported, skipping %d bytes", h.Size)
		} else {
			d.warnf(h, "unknown chunk type, skipping %d bytes", h.Size)
		}
		d.r.Seek(h.End)
	}
	d.r.Seek(end)
	return nil
}

// array decodes a container whose children are all of type tag.
func (d *decoder) array(end int64, tag uint32, fn handler) error {
	return d.walk(end, handlers{tag: fn})
}
