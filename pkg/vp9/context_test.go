package vp9_test

import (
	"testing"

	"github.com/daanv2/go-vpx/pkg/vp9"
	"github.com/stretchr/testify/require"
)

func TestPlaneGroups(t *testing.T) {
	require.Equal(t, 1, vp9.PlaneGroups(vp9.BLOCK_16X16))
	require.Equal(t, 2, vp9.PlaneGroups(vp9.BLOCK_32X32))
	require.Equal(t, 4, vp9.PlaneGroups(vp9.BLOCK_64X64))
	require.Panics(t, func() { vp9.PlaneGroups(vp9.BLOCK_SIZE_TYPE(3)) })
}

func TestEntropyContextsAt(t *testing.T) {
	var e vp9.EntropyContexts

	// Flat slots walk Y, U, V of each plane group in turn.
	require.Same(t, &e[0].Y[0], e.At(0))
	require.Same(t, &e[0].Y[3], e.At(3))
	require.Same(t, &e[0].U[0], e.At(4))
	require.Same(t, &e[0].V[1], e.At(7))
	require.Same(t, &e[1].Y[0], e.At(8))
	require.Same(t, &e[2].U[1], e.At(21))
	require.Same(t, &e[3].V[1], e.At(31))

	// All 32 slots address distinct contexts.
	seen := map[*vp9.ENTROPY_CONTEXT]bool{}
	for i := 0; i < 32; i++ {
		seen[e.At(i)] = true
	}
	require.Len(t, seen, 32)

	require.Panics(t, func() { e.At(32) })
	require.Panics(t, func() { e.At(-1) })
}

// Every slot the neighbor tables produce resolves to storage.
func TestTablesAddressStorage(t *testing.T) {
	var e vp9.EntropyContexts

	for tx := 0; tx < vp9.TX_SIZE_MAX_SB; tx++ {
		for _, v := range vp9.VP9Block2LeftSB64[tx] {
			require.NotNil(t, e.At(int(v)))
		}
		for _, v := range vp9.VP9Block2AboveSB64[tx] {
			require.NotNil(t, e.At(int(v)))
		}
	}
}

func TestEntropyContextsReset(t *testing.T) {
	var e vp9.EntropyContexts
	for i := 0; i < 32; i++ {
		*e.At(i) = vp9.ENTROPY_CONTEXT(i + 1)
	}

	e.Reset()

	for i := 0; i < 32; i++ {
		require.Equal(t, vp9.ENTROPY_CONTEXT(0), *e.At(i))
	}
}
