// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"encoding/binary"
	"io"
	"math"
)

// Serialization format: an 8-byte header (magic byte, format version,
// node size as uint16, item count as uint32), then a uint32 level
// count, then each level from the leaves up as a uint32 box count,
// the boxes as four float64 coordinates each, a uint32 permutation
// length and the permutation as uint32 positions. All integers and
// floats are little-endian.
const (
	formatMagic   = 0xf9
	formatVersion = 1
	headerSize    = 8
)

// Marshal serializes the tree to a writer, returning the number of
// bytes written. The output can be restored with Unmarshal and is
// byte-for-byte deterministic for a given tree. Panics if w is nil.
func (t *RTree) Marshal(w io.Writer) (int, error) {
	if w == nil {
		textPanic("nil writer")
	}
	buf := make([]byte, 0, t.marshaledSize())
	buf = append(buf, formatMagic, formatVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(t.nodeSize))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(t.numItems))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(t.levels)))
	for i := range t.levels {
		lv := &t.levels[i]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(lv.boxes)))
		for j := range lv.boxes {
			b := &lv.boxes[j]
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.XMin))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.YMin))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.XMax))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.YMax))
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(lv.order)))
		for _, pos := range lv.order {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(pos))
		}
	}
	n, err := w.Write(buf)
	if err != nil {
		return n, wrapErr("failed to write tree", err)
	}
	return n, nil
}

func (t *RTree) marshaledSize() int {
	n := headerSize + 4
	for i := range t.levels {
		n += 4 + 32*len(t.levels[i].boxes)
		n += 4 + 4*len(t.levels[i].order)
	}
	return n
}

// Unmarshal restores a tree serialized by Marshal. The level layout of
// the restored tree is structurally identical to the original's.
// Panics if r is nil.
func Unmarshal(r io.Reader) (*RTree, error) {
	if r == nil {
		textPanic("nil reader")
	}
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, wrapErr("failed to read header", err)
	}
	if hdr[0] != formatMagic {
		return nil, fmtErr("bad magic byte 0x%02x", hdr[0])
	}
	if hdr[1] != formatVersion {
		return nil, fmtErr("got v%d data when expecting v%d", hdr[1], formatVersion)
	}
	nodeSize := int(binary.LittleEndian.Uint16(hdr[2:4]))
	if nodeSize < 2 {
		return nil, fmtErr("node size %d below minimum of 2", nodeSize)
	}
	numItems := int(binary.LittleEndian.Uint32(hdr[4:8]))

	numLevels, err := readUint32(r)
	if err != nil {
		return nil, wrapErr("failed to read level count", err)
	}
	t := &RTree{nodeSize: nodeSize, numItems: numItems}
	for i := 0; i < int(numLevels); i++ {
		numBoxes, err := readUint32(r)
		if err != nil {
			return nil, wrapErr("failed to read box count", err)
		}
		lv := level{boxes: make([]Box, numBoxes)}
		for j := range lv.boxes {
			if lv.boxes[j], err = readBox(r); err != nil {
				return nil, wrapErr("failed to read box", err)
			}
		}
		orderLen, err := readUint32(r)
		if err != nil {
			return nil, wrapErr("failed to read permutation length", err)
		}
		if i == 0 && orderLen != 0 {
			return nil, fmtErr("leaf level carries a permutation of length %d", orderLen)
		}
		if i > 0 && int(orderLen) != len(t.levels[i-1].boxes) {
			return nil, fmtErr("level %d permutation length %d, want %d",
				i, orderLen, len(t.levels[i-1].boxes))
		}
		if orderLen > 0 {
			lv.order = make([]int, orderLen)
			for j := range lv.order {
				pos, err := readUint32(r)
				if err != nil {
					return nil, wrapErr("failed to read permutation", err)
				}
				if int(pos) >= len(t.levels[i-1].boxes) {
					return nil, fmtErr("level %d permutation position %d out of range", i, pos)
				}
				lv.order[j] = int(pos)
			}
		}
		t.levels = append(t.levels, lv)
	}
	if len(t.levels) > 0 && len(t.levels[0].boxes) != numItems {
		return nil, fmtErr("leaf level has %d boxes, header says %d items",
			len(t.levels[0].boxes), numItems)
	}
	if len(t.levels) == 0 && numItems != 0 {
		return nil, fmtErr("no levels for %d items", numItems)
	}
	return t, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readBox(r io.Reader) (Box, error) {
	var b [32]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Box{}, err
	}
	return Box{
		XMin: math.Float64frombits(binary.LittleEndian.Uint64(b[0:8])),
		YMin: math.Float64frombits(binary.LittleEndian.Uint64(b[8:16])),
		XMax: math.Float64frombits(binary.LittleEndian.Uint64(b[16:24])),
		YMax: math.Float64frombits(binary.LittleEndian.Uint64(b[24:32])),
	}, nil
}
