// Copyright (c) 2010 The WebM project authors. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

// Package vp9 holds the block-descriptor addressing tables of the VP9
// coefficient coder: for each transform size and raster sub-block position,
// which above/left entropy-context slot conditions that block.
package vp9

import (
	"github.com/daanv2/go-vpx/pkg/assert"
	"github.com/daanv2/go-vpx/pkg/generics"
)

// ENTROPY_CONTEXTS_PER_PLANES is the addressable context stride of one
// ENTROPY_CONTEXT_PLANES group (4 luma + 2 U + 2 V). The tables below bake
// this stride into their S/T/U bands; init pins it to the struct layout.
const ENTROPY_CONTEXTS_PER_PLANES = 8

func init() {
	assert.Assert(generics.SizeOf[ENTROPY_CONTEXT_PLANES]()/generics.SizeOf[ENTROPY_CONTEXT]() == ENTROPY_CONTEXTS_PER_PLANES)
}

// s, t, u address the slot x one, two or three plane groups further on, for
// blocks whose neighbor lives in a later 16x16 region of the superblock.
// C: #define S(x) x + sizeof(ENTROPY_CONTEXT_PLANES) / sizeof(ENTROPY_CONTEXT)
func s(x uint8) uint8 { return x + ENTROPY_CONTEXTS_PER_PLANES }
func t(x uint8) uint8 { return x + 2*ENTROPY_CONTEXTS_PER_PLANES }
func u(x uint8) uint8 { return x + 3*ENTROPY_CONTEXTS_PER_PLANES }

var VP9Block2Left = [TX_SIZE_MAX_MB][24]uint8{
	{0, 0, 0, 0,
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
		4, 4,
		5, 5,
		6, 6,
		7, 7},
	{0, 0, 0, 0,
		0, 0, 0, 0,
		2, 2, 2, 2,
		2, 2, 2, 2,
		4, 4,
		4, 4,
		6, 6,
		6, 6},
	{0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0},
}

var VP9Block2Above = [TX_SIZE_MAX_MB][24]uint8{
	{0, 1, 2, 3,
		0, 1, 2, 3,
		0, 1, 2, 3,
		0, 1, 2, 3,
		4, 5,
		4, 5,
		6, 7,
		6, 7},
	{0, 0, 0, 0,
		2, 2, 2, 2,
		0, 0, 0, 0,
		2, 2, 2, 2,
		4, 4,
		4, 4,
		6, 6,
		6, 6},
	{0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0},
}

var VP9Block2LeftSB = [TX_SIZE_MAX_SB][96]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0,
		1, 1, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2,
		3, 3, 3, 3, 3, 3, 3, 3,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1),
		s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2),
		s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3),
		4, 4, 4, 4,
		5, 5, 5, 5,
		s(4), s(4), s(4), s(4),
		s(5), s(5), s(5), s(5),
		6, 6, 6, 6,
		7, 7, 7, 7,
		s(6), s(6), s(6), s(6),
		s(7), s(7), s(7), s(7)},
	{0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 2, 2,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2),
		s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2),
		4, 4, 4, 4,
		4, 4, 4, 4,
		s(4), s(4), s(4), s(4),
		s(4), s(4), s(4), s(4),
		6, 6, 6, 6,
		6, 6, 6, 6,
		s(6), s(6), s(6), s(6),
		s(6), s(6), s(6), s(6)},
	{0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		4, 4, 4, 4,
		4, 4, 4, 4,
		4, 4, 4, 4,
		4, 4, 4, 4,
		6, 6, 6, 6,
		6, 6, 6, 6,
		6, 6, 6, 6,
		6, 6, 6, 6},
	{0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0},
}

var VP9Block2AboveSB = [TX_SIZE_MAX_SB][96]uint8{
	{0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3),
		4, 5, s(4), s(5),
		4, 5, s(4), s(5),
		4, 5, s(4), s(5),
		4, 5, s(4), s(5),
		6, 7, s(6), s(7),
		6, 7, s(6), s(7),
		6, 7, s(6), s(7),
		6, 7, s(6), s(7)},
	{0, 0, 0, 0, 2, 2, 2, 2,
		s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		0, 0, 0, 0, 2, 2, 2, 2,
		s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		0, 0, 0, 0, 2, 2, 2, 2,
		s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		0, 0, 0, 0, 2, 2, 2, 2,
		s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		4, 4, 4, 4,
		s(4), s(4), s(4), s(4),
		4, 4, 4, 4,
		s(4), s(4), s(4), s(4),
		6, 6, 6, 6,
		s(6), s(6), s(6), s(6),
		6, 6, 6, 6,
		s(6), s(6), s(6), s(6)},
	{0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		4, 4, 4, 4,
		4, 4, 4, 4,
		4, 4, 4, 4,
		4, 4, 4, 4,
		6, 6, 6, 6,
		6, 6, 6, 6,
		6, 6, 6, 6,
		6, 6, 6, 6},
	{0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0},
}

var VP9Block2LeftSB64 = [TX_SIZE_MAX_SB][384]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1), s(1),
		s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2),
		s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3), s(3),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1), t(1),
		t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2),
		t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3), t(3),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1), u(1),
		u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2),
		u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3), u(3),
		4, 4, 4, 4, 4, 4, 4, 4,
		5, 5, 5, 5, 5, 5, 5, 5,
		s(4), s(4), s(4), s(4), s(4), s(4), s(4), s(4),
		s(5), s(5), s(5), s(5), s(5), s(5), s(5), s(5),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(5), t(5), t(5), t(5), t(5), t(5), t(5), t(5),
		u(4), u(4), u(4), u(4), u(4), u(4), u(4), u(4),
		u(5), u(5), u(5), u(5), u(5), u(5), u(5), u(5),
		6, 6, 6, 6, 6, 6, 6, 6,
		7, 7, 7, 7, 7, 7, 7, 7,
		s(6), s(6), s(6), s(6), s(6), s(6), s(6), s(6),
		s(7), s(7), s(7), s(7), s(7), s(7), s(7), s(7),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(7), t(7), t(7), t(7), t(7), t(7), t(7), t(7),
		u(6), u(6), u(6), u(6), u(6), u(6), u(6), u(6),
		u(7), u(7), u(7), u(7), u(7), u(7), u(7), u(7)},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2),
		s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2),
		t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2), t(2),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2),
		u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2), u(2),
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		s(4), s(4), s(4), s(4), s(4), s(4), s(4), s(4),
		s(4), s(4), s(4), s(4), s(4), s(4), s(4), s(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		u(4), u(4), u(4), u(4), u(4), u(4), u(4), u(4),
		u(4), u(4), u(4), u(4), u(4), u(4), u(4), u(4),
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		s(6), s(6), s(6), s(6), s(6), s(6), s(6), s(6),
		s(6), s(6), s(6), s(6), s(6), s(6), s(6), s(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		u(6), u(6), u(6), u(6), u(6), u(6), u(6), u(6),
		u(6), u(6), u(6), u(6), u(6), u(6), u(6), u(6)},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6)},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6},
}

var VP9Block2AboveSB64 = [TX_SIZE_MAX_SB][384]uint8{
	{0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		0, 1, 2, 3, s(0), s(1), s(2), s(3), t(0), t(1), t(2), t(3), u(0), u(1), u(2), u(3),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		4, 5, s(4), s(5), t(4), t(5), u(4), u(5),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7),
		6, 7, s(6), s(7), t(6), t(7), u(6), u(7)},
	{0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		0, 0, 0, 0, 2, 2, 2, 2, s(0), s(0), s(0), s(0), s(2), s(2), s(2), s(2),
		t(0), t(0), t(0), t(0), t(2), t(2), t(2), t(2), u(0), u(0), u(0), u(0), u(2), u(2), u(2), u(2),
		4, 4, 4, 4, s(4), s(4), s(4), s(4),
		t(4), t(4), t(4), t(4), u(4), u(4), u(4), u(4),
		4, 4, 4, 4, s(4), s(4), s(4), s(4),
		t(4), t(4), t(4), t(4), u(4), u(4), u(4), u(4),
		4, 4, 4, 4, s(4), s(4), s(4), s(4),
		t(4), t(4), t(4), t(4), u(4), u(4), u(4), u(4),
		4, 4, 4, 4, s(4), s(4), s(4), s(4),
		t(4), t(4), t(4), t(4), u(4), u(4), u(4), u(4),
		6, 6, 6, 6, s(6), s(6), s(6), s(6),
		t(6), t(6), t(6), t(6), u(6), u(6), u(6), u(6),
		6, 6, 6, 6, s(6), s(6), s(6), s(6),
		t(6), t(6), t(6), t(6), u(6), u(6), u(6), u(6),
		6, 6, 6, 6, s(6), s(6), s(6), s(6),
		t(6), t(6), t(6), t(6), u(6), u(6), u(6), u(6),
		6, 6, 6, 6, s(6), s(6), s(6), s(6),
		t(6), t(6), t(6), t(6), u(6), u(6), u(6), u(6)},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0), s(0),
		t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0), t(0),
		u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0), u(0),
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		t(4), t(4), t(4), t(4), t(4), t(4), t(4), t(4),
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6),
		t(6), t(6), t(6), t(6), t(6), t(6), t(6), t(6)},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 4,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6},
}

// Block2Left returns the left-neighbor context slot for a sub-block of a
// 16x16 macroblock coded with transform size tx.
func Block2Left(tx TX_SIZE, block int) uint8 {
	assert.Assertf(tx >= TX_4X4 && int(tx) < TX_SIZE_MAX_MB, "tx size %d out of macroblock range", tx)
	assert.Assertf(block >= 0 && block < len(VP9Block2Left[tx]), "block index %d out of range", block)

	return VP9Block2Left[tx][block]
}

// Block2Above is the above-neighbor counterpart of [Block2Left].
func Block2Above(tx TX_SIZE, block int) uint8 {
	assert.Assertf(tx >= TX_4X4 && int(tx) < TX_SIZE_MAX_MB, "tx size %d out of macroblock range", tx)
	assert.Assertf(block >= 0 && block < len(VP9Block2Above[tx]), "block index %d out of range", block)

	return VP9Block2Above[tx][block]
}

// Block2LeftSB returns the left-neighbor context slot for a sub-block of a
// 32x32 superblock coded with transform size tx.
func Block2LeftSB(tx TX_SIZE, block int) uint8 {
	assert.Assertf(tx >= TX_4X4 && int(tx) < TX_SIZE_MAX_SB, "tx size %d out of superblock range", tx)
	assert.Assertf(block >= 0 && block < len(VP9Block2LeftSB[tx]), "block index %d out of range", block)

	return VP9Block2LeftSB[tx][block]
}

// Block2AboveSB is the above-neighbor counterpart of [Block2LeftSB].
func Block2AboveSB(tx TX_SIZE, block int) uint8 {
	assert.Assertf(tx >= TX_4X4 && int(tx) < TX_SIZE_MAX_SB, "tx size %d out of superblock range", tx)
	assert.Assertf(block >= 0 && block < len(VP9Block2AboveSB[tx]), "block index %d out of range", block)

	return VP9Block2AboveSB[tx][block]
}

// Block2LeftSB64 returns the left-neighbor context slot for a sub-block of a
// 64x64 superblock coded with transform size tx.
func Block2LeftSB64(tx TX_SIZE, block int) uint8 {
	assert.Assertf(tx >= TX_4X4 && int(tx) < TX_SIZE_MAX_SB, "tx size %d out of superblock range", tx)
	assert.Assertf(block >= 0 && block < len(VP9Block2LeftSB64[tx]), "block index %d out of range", block)

	return VP9Block2LeftSB64[tx][block]
}

// Block2AboveSB64 is the above-neighbor counterpart of [Block2LeftSB64].
func Block2AboveSB64(tx TX_SIZE, block int) uint8 {
	assert.Assertf(tx >= TX_4X4 && int(tx) < TX_SIZE_MAX_SB, "tx size %d out of superblock range", tx)
	assert.Assertf(block >= 0 && block < len(VP9Block2AboveSB64[tx]), "block index %d out of range", block)

	return VP9Block2AboveSB64[tx][block]
}

// LeftContextIndex selects the table family by coding-unit size and returns
// the left-neighbor context slot for the given transform size and raster
// sub-block index.
func LeftContextIndex(sb BLOCK_SIZE_TYPE, tx TX_SIZE, block int) uint8 {
	switch sb {
	case BLOCK_16X16:
		return Block2Left(tx, block)
	case BLOCK_32X32:
		return Block2LeftSB(tx, block)
	case BLOCK_64X64:
		return Block2LeftSB64(tx, block)
	}

	assert.Assertf(false, "invalid block size type %d", sb)
	return 0
}

// AboveContextIndex is the above-neighbor counterpart of [LeftContextIndex].
func AboveContextIndex(sb BLOCK_SIZE_TYPE, tx TX_SIZE, block int) uint8 {
	switch sb {
	case BLOCK_16X16:
		return Block2Above(tx, block)
	case BLOCK_32X32:
		return Block2AboveSB(tx, block)
	case BLOCK_64X64:
		return Block2AboveSB64(tx, block)
	}

	assert.Assertf(false, "invalid block size type %d", sb)
	return 0
}
