// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// NoChild marks the missing children of a leaf node.
const NoChild = -1

const leafFlag = 0x80000000

type AABBTreeHeader struct {
	NodeCount uint32
	PolyCount uint32
	Padding   [6]uint32
}

// AABBTreeNode is a box over a subtree. Children index the tree's Nodes, Polys is a
// (begin, count) range of the tree's PolyIndices. Only leaves use Polys.
type AABBTreeNode struct {
	Min      vec.Vec3
	Max      vec.Vec3
	Children [2]int32 // front, back
	Polys    [2]int32 // begin, count
}

func (n *AABBTreeNode) IsLeaf() bool {
	return n.Children[0] == NoChild && n.Children[1] == NoChild
}

type wireAABBTreeNode struct {
	Min             vec.Vec3
	Max             vec.Vec3
	FrontOrPoly0    uint32 // top bit set on leaves
	BackOrPolyCount uint32
}

func (w *wireAABBTreeNode) node() AABBTreeNode {
	n := AABBTreeNode{Min: w.Min, Max: w.Max}
	if w.FrontOrPoly0&leafFlag != 0 {
		n.Children = [2]int32{NoChild, NoChild}
		n.Polys = [2]int32{int32(w.FrontOrPoly0 &^ leafFlag), int32(w.BackOrPolyCount)}
	} else {
		n.Children = [2]int32{int32(w.FrontOrPoly0), int32(w.BackOrPolyCount)}
	}
	return n
}

type AABBTree struct {
	Header      *AABBTreeHeader
	PolyIndices []int32
	Nodes       []AABBTreeNode
}

// LeafPolys returns the polygon indices of leaf n, or nil for internal nodes.
func (t *AABBTree) LeafPolys(n *AABBTreeNode) []int32 {
	if !n.IsLeaf() {
		return nil
	}
	b, c := int(n.Polys[0]), int(n.Polys[1])
	if b < 0 || c < 0 || b+c > len(t.PolyIndices) {
		return nil
	}
	return t.PolyIndices[b : b+c]
}

func (d *decoder) readAABBTree(end int64) (*AABBTree, error) {
	t := &AABBTree{}
	err := d.walk(end, handlers{
		ChunkAABBTreeHeader: func(h ChunkHeader) error {
			t.Header = &AABBTreeHeader{}
			return d.r.Read(t.Header)
		},
		ChunkAABBTreePolyIndices: func(h ChunkHeader) (err error) {
			t.PolyIndices, err = readList[int32](d.r, h.End)
			return
		},
		ChunkAABBTreeNodes: func(h ChunkHeader) error {
			ws, err := readList[wireAABBTreeNode](d.r, h.End)
			if err != nil {
				return err
			}
			t.Nodes = make([]AABBTreeNode, len(ws))
			for i := range ws {
				t.Nodes[i] = ws[i].node()
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
