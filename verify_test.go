package cubescan_test

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/cube"
)

const solved = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// edit returns s with the bytes at the given indices replaced.
func edit(s string, subst map[int]byte) string {
	b := []byte(s)
	for i, ch := range subst {
		b[i] = ch
	}
	return string(b)
}

func TestValidateFacecubeAccepts(t *testing.T) {
	if err := cubescan.ValidateFacecube(solved); err != nil {
		t.Errorf("solved cube rejected: %v", err)
	}

	c := cube.New()
	if err := c.ApplyNotation("R U2 F' L D B2 R' F U L2 D' B"); err != nil {
		t.Fatal(err)
	}
	if err := cubescan.ValidateFacecube(c.Facecube()); err != nil {
		t.Errorf("scrambled cube rejected: %v", err)
	}
}

func TestValidateFacecubeRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too short", solved[:53]},
		{"too long", solved + "U"},
		{"bad letter", edit(solved, map[int]byte{0: 'X'})},
		{"wrong color counts", edit(solved, map[int]byte{0: 'R'})},
		{"swapped centers", edit(solved, map[int]byte{4: 'R', 13: 'U'})},
		// Corner twisted in place: orientation sum 1 mod 3.
		{"twisted corner", edit(solved, map[int]byte{8: 'R', 9: 'F', 20: 'U'})},
		// Edge flipped in place: orientation sum 1 mod 2.
		{"flipped edge", edit(solved, map[int]byte{7: 'F', 19: 'U'})},
		// Two edges exchanged: edge parity 1, corner parity 0.
		{"swapped edges", edit(solved, map[int]byte{5: 'U', 10: 'F', 7: 'U', 19: 'R'})},
		// One corner and one edge sticker exchanged: the corner shows a
		// color combination no cubie has.
		{"impossible cubie", edit(solved, map[int]byte{9: 'F', 19: 'R'})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cubescan.ValidateFacecube(tc.in)
			if !errors.Is(err, cubescan.ErrInvalidFacecube) {
				t.Errorf("ValidateFacecube(%q) = %v, want ErrInvalidFacecube", tc.in, err)
			}
		})
	}
}
