package cubescan_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/cube"
)

// labelSource is a confidence source for tests: the blue channel of each
// sample carries the true color index, which gets full confidence. A blue
// value of noConfidence yields an all-zero row.
type labelSource struct{}

const noConfidence = 0xff

func (labelSource) Confidence(b, g, r uint8) [cubescan.NumColors]uint16 {
	var row [cubescan.NumColors]uint16
	if b != noConfidence {
		row[b] = 100
	}
	return row
}

// samplesFor encodes a facelet string as BGR samples for labelSource.
func samplesFor(t *testing.T, facecube string) [cubescan.NumFacelets][3]uint8 {
	t.Helper()
	var bgrs [cubescan.NumFacelets][3]uint8
	for f := 0; f < cubescan.NumFacelets; f++ {
		c, err := cubescan.ParseColor(facecube[f])
		require.NoError(t, err)
		bgrs[f][0] = uint8(c)
	}
	return bgrs
}

func TestMatchSolved(t *testing.T) {
	m := cubescan.NewMatcher(labelSource{})
	want := cube.New().Facecube()
	got, err := m.Match(samplesFor(t, want))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMatchScrambled(t *testing.T) {
	scrambles := []string{
		"R U R' U'",
		"R U2 F' L D B2 R' F U L2 D' B",
		"F2 D' L2 B U R' F' D2 L B' U2 R",
		"U R F D L B U' R' F' D' L' B'",
	}
	m := cubescan.NewMatcher(labelSource{})
	for _, scramble := range scrambles {
		c := cube.New()
		require.NoError(t, c.ApplyNotation(scramble))
		want := c.Facecube()

		got, err := m.Match(samplesFor(t, want))
		require.NoError(t, err, "scramble %q", scramble)
		require.Equal(t, want, got, "scramble %q", scramble)
		require.NoError(t, cubescan.ValidateFacecube(got))
	}
}

// A single unreadable facelet is recovered from the cubie constraints: with
// the other 53 facelets assigned, only one color fits the remaining slot.
func TestMatchRecoversUnreadableFacelet(t *testing.T) {
	want := cube.New().Facecube()
	bgrs := samplesFor(t, want)
	bgrs[20][0] = noConfidence

	m := cubescan.NewMatcher(labelSource{})
	got, err := m.Match(bgrs)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// uniformSource claims every sample is U, which no cube can satisfy.
type uniformSource struct{}

func (uniformSource) Confidence(b, g, r uint8) [cubescan.NumColors]uint16 {
	return [cubescan.NumColors]uint16{cubescan.U: 100}
}

func TestMatchBadScan(t *testing.T) {
	m := cubescan.NewMatcher(uniformSource{}, cubescan.WithAttempts(1))
	var bgrs [cubescan.NumFacelets][3]uint8
	_, err := m.Match(bgrs)
	require.ErrorIs(t, err, cubescan.ErrScan)
}

func TestMatchDeterministic(t *testing.T) {
	c := cube.New()
	require.NoError(t, c.ApplyNotation("R U2 F' L D B2"))
	bgrs := samplesFor(t, c.Facecube())
	// Blind the matcher on two facelets so the search actually branches.
	bgrs[20][0] = noConfidence
	bgrs[7][0] = noConfidence

	m := cubescan.NewMatcher(labelSource{}, cubescan.WithAttempts(6))
	first, err := m.Match(bgrs)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := m.Match(bgrs)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

// A single Matcher is safe for concurrent use: all per-call state lives on
// the stack of Match.
func TestMatchConcurrent(t *testing.T) {
	c := cube.New()
	require.NoError(t, c.ApplyNotation("F2 D' L2 B U R'"))
	want := c.Facecube()
	bgrs := samplesFor(t, want)
	m := cubescan.NewMatcher(labelSource{})

	var wg sync.WaitGroup
	results := make([]string, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = m.Match(bgrs)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, want, results[i])
	}
}
