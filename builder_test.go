package cubescan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assignSolvedColors asserts the solved-cube color of every facelet of the
// builder's kind, skipping the slots listed in skip, and propagates after
// each assertion the way the matcher does.
func assignSolvedColors(t *testing.T, b *builder, edges bool, skip ...int8) {
	t.Helper()
	for f := 0; f < NumFacelets; f++ {
		if isCenterFacelet(f) || isEdgeFacelet(f) != edges {
			continue
		}
		slot := fromFacelet[f]
		skipped := false
		for _, s := range skip {
			if slot == s {
				skipped = true
				break
			}
		}
		if skipped {
			continue
		}
		b.assignCol(slot, faceletToPos[f], Color(f/9))
		require.True(t, b.propagate(), "contradiction at facelet %d", f)
	}
}

func TestBuilderSolvedCorners(t *testing.T) {
	b := &builder{}
	b.init(&cornerLayout)
	assignSolvedColors(t, b, false)

	require.Equal(t, int8(0), b.parity())
	require.Equal(t, 0, b.orisum)
	for i := 0; i < numCorners; i++ {
		require.Equal(t, int8(i), b.perm[i], "corner slot %d", i)
		require.Equal(t, int8(0), b.oris[i], "corner slot %d", i)
	}
}

func TestBuilderSolvedEdges(t *testing.T) {
	b := &builder{}
	b.init(&edgeLayout)
	assignSolvedColors(t, b, true)

	require.Equal(t, int8(0), b.parity())
	for i := 0; i < numEdges; i++ {
		require.Equal(t, int8(i), b.perm[i], "edge slot %d", i)
		require.Equal(t, int8(0), b.oris[i], "edge slot %d", i)
	}
}

// Leaving one corner slot entirely unassigned must not matter: the last
// cubie is the only one left and the last orientation is forced by the
// zero-sum rule.
func TestBuilderLastCornerForced(t *testing.T) {
	b := &builder{}
	b.init(&cornerLayout)
	assignSolvedColors(t, b, false, drb)

	require.Equal(t, int8(0), b.parity())
	require.Equal(t, int8(drb), b.perm[drb])
	require.Equal(t, int8(0), b.oris[drb])
}

// With parity known from the outside, the permutation of the last two
// slots is forced without any color evidence.
func TestBuilderParityResolvesLastTwo(t *testing.T) {
	even := &builder{}
	even.init(&edgeLayout)
	even.assignPar(0)
	assignSolvedColors(t, even, true, bl, br)
	require.Equal(t, int8(bl), even.perm[bl])
	require.Equal(t, int8(br), even.perm[br])

	odd := &builder{}
	odd.init(&edgeLayout)
	odd.assignPar(1)
	assignSolvedColors(t, odd, true, bl, br)
	require.Equal(t, int8(br), odd.perm[bl])
	require.Equal(t, int8(bl), odd.perm[br])
}

// propagate is a fixpoint: running it again on a consistent builder must
// not change anything.
func TestBuilderPropagateIdempotent(t *testing.T) {
	b := &builder{}
	b.init(&cornerLayout)
	b.assignCol(fromFacelet[8], faceletToPos[8], U)
	require.True(t, b.propagate())
	b.assignCol(fromFacelet[9], faceletToPos[9], R)
	require.True(t, b.propagate())

	snap := *b
	require.True(t, b.propagate())
	require.True(t, snap == *b, "second propagate changed state")
}

// A builder snapshot is a plain value copy; restoring it discards a failed
// assertion completely.
func TestBuilderSnapshotRestore(t *testing.T) {
	b := &builder{}
	b.init(&cornerLayout)
	b.assignCol(fromFacelet[8], faceletToPos[8], U)
	require.True(t, b.propagate())

	snap := *b
	b.assignCol(fromFacelet[8], faceletToPos[8], D)
	require.False(t, b.propagate())

	*b = snap
	require.True(t, snap == *b)
	require.True(t, b.propagate())
	require.True(t, snap == *b)
}
