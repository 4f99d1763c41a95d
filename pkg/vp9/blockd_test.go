package vp9_test

import (
	"testing"

	"github.com/daanv2/go-vpx/pkg/generics"
	"github.com/daanv2/go-vpx/pkg/vp9"
	"github.com/stretchr/testify/require"
)

func TestPlaneGroupStride(t *testing.T) {
	require.Equal(t, vp9.ENTROPY_CONTEXTS_PER_PLANES, generics.SizeOf[vp9.ENTROPY_CONTEXT_PLANES]()/generics.SizeOf[vp9.ENTROPY_CONTEXT]())
}

func TestTableShapes(t *testing.T) {
	require.Len(t, vp9.VP9Block2Left, vp9.TX_SIZE_MAX_MB)
	require.Len(t, vp9.VP9Block2Above, vp9.TX_SIZE_MAX_MB)
	require.Len(t, vp9.VP9Block2LeftSB, vp9.TX_SIZE_MAX_SB)
	require.Len(t, vp9.VP9Block2AboveSB, vp9.TX_SIZE_MAX_SB)
	require.Len(t, vp9.VP9Block2LeftSB64, vp9.TX_SIZE_MAX_SB)
	require.Len(t, vp9.VP9Block2AboveSB64, vp9.TX_SIZE_MAX_SB)

	require.Len(t, vp9.VP9Block2Left[0], 24)
	require.Len(t, vp9.VP9Block2Above[0], 24)
	require.Len(t, vp9.VP9Block2LeftSB[0], 96)
	require.Len(t, vp9.VP9Block2AboveSB[0], 96)
	require.Len(t, vp9.VP9Block2LeftSB64[0], 384)
	require.Len(t, vp9.VP9Block2AboveSB64[0], 384)
}

// Every slot index must fall inside the flat context band its family can
// address: one plane group for macroblocks, two for 32x32 superblocks, four
// for 64x64 superblocks.
func TestSlotIndexBounds(t *testing.T) {
	bound := func(sb vp9.BLOCK_SIZE_TYPE) uint8 {
		return uint8(vp9.PlaneGroups(sb) * vp9.ENTROPY_CONTEXTS_PER_PLANES)
	}

	for tx, row := range vp9.VP9Block2Left {
		for i, v := range row {
			require.Less(t, v, bound(vp9.BLOCK_16X16), "left[%d][%d]", tx, i)
		}
	}
	for tx, row := range vp9.VP9Block2Above {
		for i, v := range row {
			require.Less(t, v, bound(vp9.BLOCK_16X16), "above[%d][%d]", tx, i)
		}
	}
	for tx, row := range vp9.VP9Block2LeftSB {
		for i, v := range row {
			require.Less(t, v, bound(vp9.BLOCK_32X32), "left_sb[%d][%d]", tx, i)
		}
	}
	for tx, row := range vp9.VP9Block2AboveSB {
		for i, v := range row {
			require.Less(t, v, bound(vp9.BLOCK_32X32), "above_sb[%d][%d]", tx, i)
		}
	}
	for tx, row := range vp9.VP9Block2LeftSB64 {
		for i, v := range row {
			require.Less(t, v, bound(vp9.BLOCK_64X64), "left_sb64[%d][%d]", tx, i)
		}
	}
	for tx, row := range vp9.VP9Block2AboveSB64 {
		for i, v := range row {
			require.Less(t, v, bound(vp9.BLOCK_64X64), "above_sb64[%d][%d]", tx, i)
		}
	}
}

// Spot values of the 4x4 rows, straight from the reference tables.
func TestBlock2LeftAboveTX4X4(t *testing.T) {
	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"left[0]", vp9.Block2Left(vp9.TX_4X4, 0), 0},
		{"left[4]", vp9.Block2Left(vp9.TX_4X4, 4), 1},
		{"left[15]", vp9.Block2Left(vp9.TX_4X4, 15), 3},
		{"left[16]", vp9.Block2Left(vp9.TX_4X4, 16), 4},
		{"left[23]", vp9.Block2Left(vp9.TX_4X4, 23), 7},
		{"above[0]", vp9.Block2Above(vp9.TX_4X4, 0), 0},
		{"above[1]", vp9.Block2Above(vp9.TX_4X4, 1), 1},
		{"above[4]", vp9.Block2Above(vp9.TX_4X4, 4), 0},
		{"above[17]", vp9.Block2Above(vp9.TX_4X4, 17), 5},
		{"above[20]", vp9.Block2Above(vp9.TX_4X4, 20), 6},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.got, tt.name)
	}
}

// The S/T/U bands step one plane group (8 slots) at a time.
func TestFurtherPlaneBands(t *testing.T) {
	// left_sb, TX_4X4: luma row 4 starts the next plane group.
	require.Equal(t, uint8(8), vp9.Block2LeftSB(vp9.TX_4X4, 32))
	// left_sb64, TX_4X4: luma rows 8 and 12 are two and three groups on.
	require.Equal(t, uint8(16), vp9.Block2LeftSB64(vp9.TX_4X4, 128))
	require.Equal(t, uint8(24), vp9.Block2LeftSB64(vp9.TX_4X4, 192))
	// above_sb64, TX_4X4: columns 4, 8 and 12 within a luma row.
	require.Equal(t, uint8(8), vp9.Block2AboveSB64(vp9.TX_4X4, 4))
	require.Equal(t, uint8(16), vp9.Block2AboveSB64(vp9.TX_4X4, 8))
	require.Equal(t, uint8(24), vp9.Block2AboveSB64(vp9.TX_4X4, 12))
}

// The 64x64 luma section is the 32x32 one replicated at twice the span:
// modulo the plane-group stride, entry (r, c) of the 16x16 grid matches
// entry (r%8, c%8) of the 8x8 grid, for every transform size.
func TestSB64ReplicatesSBLumaPattern(t *testing.T) {
	const stride = vp9.ENTROPY_CONTEXTS_PER_PLANES

	for tx := 0; tx < vp9.TX_SIZE_MAX_SB; tx++ {
		for r := 0; r < 16; r++ {
			for c := 0; c < 16; c++ {
				got64 := vp9.VP9Block2LeftSB64[tx][r*16+c] % stride
				gotSB := vp9.VP9Block2LeftSB[tx][(r%8)*8+c%8] % stride
				require.Equal(t, gotSB, got64, "left tx=%d r=%d c=%d", tx, r, c)

				got64 = vp9.VP9Block2AboveSB64[tx][r*16+c] % stride
				gotSB = vp9.VP9Block2AboveSB[tx][(r%8)*8+c%8] % stride
				require.Equal(t, gotSB, got64, "above tx=%d r=%d c=%d", tx, r, c)
			}
		}
	}
}

func TestContextIndexAccessors(t *testing.T) {
	for tx := vp9.TX_4X4; int(tx) < vp9.TX_SIZE_MAX_MB; tx++ {
		for b := 0; b < 24; b++ {
			require.Equal(t, vp9.VP9Block2Left[tx][b], vp9.LeftContextIndex(vp9.BLOCK_16X16, tx, b))
			require.Equal(t, vp9.VP9Block2Above[tx][b], vp9.AboveContextIndex(vp9.BLOCK_16X16, tx, b))
		}
	}
	for tx := vp9.TX_4X4; int(tx) < vp9.TX_SIZE_MAX_SB; tx++ {
		for b := 0; b < 96; b++ {
			require.Equal(t, vp9.VP9Block2LeftSB[tx][b], vp9.LeftContextIndex(vp9.BLOCK_32X32, tx, b))
			require.Equal(t, vp9.VP9Block2AboveSB[tx][b], vp9.AboveContextIndex(vp9.BLOCK_32X32, tx, b))
		}
		for b := 0; b < 384; b++ {
			require.Equal(t, vp9.VP9Block2LeftSB64[tx][b], vp9.LeftContextIndex(vp9.BLOCK_64X64, tx, b))
			require.Equal(t, vp9.VP9Block2AboveSB64[tx][b], vp9.AboveContextIndex(vp9.BLOCK_64X64, tx, b))
		}
	}
}

// Lookups are pure: same inputs, same outputs, across repeated calls.
func TestLookupIdempotence(t *testing.T) {
	first := vp9.LeftContextIndex(vp9.BLOCK_64X64, vp9.TX_8X8, 200)
	for i := 0; i < 4; i++ {
		require.Equal(t, first, vp9.LeftContextIndex(vp9.BLOCK_64X64, vp9.TX_8X8, 200))
	}
}

func TestAccessorPreconditions(t *testing.T) {
	require.Panics(t, func() { vp9.Block2Left(vp9.TX_32X32, 0) })
	require.Panics(t, func() { vp9.Block2Above(vp9.TX_4X4, 24) })
	require.Panics(t, func() { vp9.Block2LeftSB(vp9.TX_4X4, 96) })
	require.Panics(t, func() { vp9.Block2AboveSB64(vp9.TX_4X4, -1) })
	require.Panics(t, func() { vp9.Block2LeftSB64(vp9.TX_SIZE(4), 0) })
	require.Panics(t, func() { vp9.LeftContextIndex(vp9.BLOCK_SIZE_TYPE(3), vp9.TX_4X4, 0) })
	require.Panics(t, func() { vp9.AboveContextIndex(vp9.BLOCK_16X16, vp9.TX_32X32, 0) })
}
