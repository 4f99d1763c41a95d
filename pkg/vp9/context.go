// Copyright (c) 2010 The WebM project authors. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp9

import (
	"github.com/daanv2/go-vpx/pkg/assert"
	"github.com/daanv2/go-vpx/pkg/stdlib"
)

// MAX_PLANE_GROUPS is the number of 16x16 plane groups a 64x64 superblock
// spans along one axis; the SB64 tables address all of them as one band.
const MAX_PLANE_GROUPS = 4

// EntropyContexts is the above (or left) coefficient-coding state of one
// 64x64 superblock row (or column). The neighbor tables index it flat:
// slot / ENTROPY_CONTEXTS_PER_PLANES picks the plane group, the remainder
// the slot within it.
type EntropyContexts [MAX_PLANE_GROUPS]ENTROPY_CONTEXT_PLANES

// PlaneGroups returns how many plane groups a coding unit of the given size
// spans along one axis, i.e. how much of an [EntropyContexts] its neighbor
// tables can address.
func PlaneGroups(sb BLOCK_SIZE_TYPE) int {
	switch sb {
	case BLOCK_16X16:
		return 1
	case BLOCK_32X32:
		return 2
	case BLOCK_64X64:
		return 4
	}

	assert.Assertf(false, "invalid block size type %d", sb)
	return 0
}

// At resolves a table slot index to the context it addresses.
func (e *EntropyContexts) At(slot int) *ENTROPY_CONTEXT {
	assert.Assertf(slot >= 0 && slot < MAX_PLANE_GROUPS*ENTROPY_CONTEXTS_PER_PLANES, "context slot %d out of range", slot)

	p := &e[slot/ENTROPY_CONTEXTS_PER_PLANES]
	switch i := slot % ENTROPY_CONTEXTS_PER_PLANES; {
	case i < len(p.Y):
		return &p.Y[i]
	case i < len(p.Y)+len(p.U):
		return &p.U[i-len(p.Y)]
	default:
		return &p.V[i-len(p.Y)-len(p.U)]
	}
}

// Reset clears all plane groups, as done at the start of a tile row.
// C: vpx_memset(above_context, 0, sizeof(*above_context) * mi_cols)
func (e *EntropyContexts) Reset() {
	for i := range e {
		e[i].Clear()
	}
}

// Clear zeroes one plane group.
func (p *ENTROPY_CONTEXT_PLANES) Clear() {
	stdlib.Memset2(p.Y[:], 0)
	stdlib.Memset2(p.U[:], 0)
	stdlib.Memset2(p.V[:], 0)
}
