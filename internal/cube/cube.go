// Package cube is a minimal facelet-level cube model. It exists to apply
// move sequences to a known state, producing facelet strings for test
// fixtures, training labels and CLI display. It knows nothing about
// matching or validation; see the root package for those.
package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubescan"
)

// Turn is the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // clockwise quarter turn
	CCW    Turn = -1 // counter-clockwise quarter turn
	Double Turn = 2  // half turn
)

// Move is a single face turn in standard notation.
type Move struct {
	Face cubescan.Color
	Turn Turn
}

// Notation returns the standard string for this move, e.g. R, R', R2.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

func (m Move) String() string { return m.Notation() }

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// ParseMove parses a single move in standard notation: R, R', R2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("cube: empty move")
	}
	face, err := cubescan.ParseColor(s[0])
	if err != nil {
		return Move{}, fmt.Errorf("cube: bad face in move %q", s)
	}
	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, fmt.Errorf("cube: bad turn in move %q", s)
		}
	}
	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated move sequence, e.g. "R U R' U'".
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// Cube holds the 54 facelet colors in face-major, row-major order.
type Cube struct {
	Facelets [cubescan.NumFacelets]cubescan.Color
}

// New returns a solved cube.
func New() *Cube {
	c := &Cube{}
	for f := range c.Facelets {
		c.Facelets[f] = cubescan.Color(f / 9)
	}
	return c
}

// moveCycles lists, per face, the five 4-cycles a clockwise quarter turn
// induces on facelet indices: two on the turning face itself and three
// carrying the adjacent side strips. The sticker at cycle[i] moves to
// cycle[i+1].
var moveCycles = [cubescan.NumColors][5][4]int{
	cubescan.U: {
		{0, 2, 8, 6}, {1, 5, 7, 3},
		{18, 36, 45, 9}, {19, 37, 46, 10}, {20, 38, 47, 11},
	},
	cubescan.R: {
		{9, 11, 17, 15}, {10, 14, 16, 12},
		{20, 2, 51, 29}, {23, 5, 48, 32}, {26, 8, 45, 35},
	},
	cubescan.F: {
		{18, 20, 26, 24}, {19, 23, 25, 21},
		{6, 9, 29, 44}, {7, 12, 28, 41}, {8, 15, 27, 38},
	},
	cubescan.D: {
		{27, 29, 35, 33}, {28, 32, 34, 30},
		{24, 15, 51, 42}, {25, 16, 52, 43}, {26, 17, 53, 44},
	},
	cubescan.L: {
		{36, 38, 44, 42}, {37, 41, 43, 39},
		{0, 18, 27, 53}, {3, 21, 30, 50}, {6, 24, 33, 47},
	},
	cubescan.B: {
		{45, 47, 53, 51}, {46, 50, 52, 48},
		{0, 42, 35, 11}, {1, 39, 34, 14}, {2, 36, 33, 17},
	},
}

func (c *Cube) quarterTurn(face cubescan.Color) {
	old := c.Facelets
	for _, cyc := range moveCycles[face] {
		for i := 0; i < 4; i++ {
			c.Facelets[cyc[(i+1)%4]] = old[cyc[i]]
		}
	}
}

// Apply performs a single move on the cube in place.
func (c *Cube) Apply(m Move) {
	n := 1
	switch m.Turn {
	case CCW:
		n = 3
	case Double:
		n = 2
	}
	for i := 0; i < n; i++ {
		c.quarterTurn(m.Face)
	}
}

// ApplyMoves performs a sequence of moves on the cube in place.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// ApplyNotation parses and applies a space-separated move sequence.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.ApplyMoves(moves)
	return nil
}

// Facecube returns the cube state as a 54-letter facelet string.
func (c *Cube) Facecube() string {
	out := make([]byte, cubescan.NumFacelets)
	for f, col := range c.Facelets {
		out[f] = col.String()[0]
	}
	return string(out)
}

// IsSolved reports whether every face is a single color.
func (c *Cube) IsSolved() bool {
	for f, col := range c.Facelets {
		if col != cubescan.Color(f/9) {
			return false
		}
	}
	return true
}
