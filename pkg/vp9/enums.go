// Copyright (c) 2010 The WebM project authors. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp9

// TX_SIZE selects the square transform size coded for a block.
type TX_SIZE int

const (
	TX_4X4 TX_SIZE = iota
	TX_8X8
	TX_16X16
	TX_32X32
)

const (
	TX_SIZE_MAX_MB = 3 // transform sizes usable inside a 16x16 macroblock
	TX_SIZE_MAX_SB = 4 // superblocks additionally allow TX_32X32
)

// BLOCK_SIZE_TYPE selects the neighbor-table family: the size of the coding
// unit the raster sub-block index runs over.
type BLOCK_SIZE_TYPE int

const (
	BLOCK_16X16 BLOCK_SIZE_TYPE = iota
	BLOCK_32X32
	BLOCK_64X64
)
