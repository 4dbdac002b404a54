// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import "strings"

// Dazzle is a lens flare sitting at the pivot of the bone it is attached to.
type Dazzle struct {
	FullName string
	TypeName string // section of dazzle.ini
}

// Name returns the part of the full name after its last '.'.
func (z *Dazzle) Name() string {
	if i := strings.LastIndexByte(z.FullName, '.'); i >= 0 {
		return z.FullName[i+1:]
	}
	return z.FullName
}

func (d *decoder) readDazzle(end int64) (*Dazzle, error) {
	z := &Dazzle{}
	err := d.walk(end, handlers{
		ChunkDazzleName: func(h ChunkHeader) (err error) {
			z.FullName, err = d.r.ReadString()
			return
		},
		ChunkDazzleTypeName: func(h ChunkHeader) (err error) {
			z.TypeName, err = d.r.ReadString()
			return
		},
	})
	if err != nil {
		return nil, err
	}
	return z, nil
}
