package cubescan

import "fmt"

// ValidateFacecube checks that a 54-letter facelet string describes a
// physically realizable cube: nine facelets of each color, fixed centers,
// every corner and edge a canonical cubie, equal corner and edge
// permutation parity, and orientation sums of zero.
//
// The matcher only ever emits strings that pass this check; it exists for
// callers that receive facelet strings from elsewhere.
func ValidateFacecube(s string) error {
	if len(s) != NumFacelets {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidFacecube, len(s), NumFacelets)
	}

	var cols [NumFacelets]Color
	var counts [NumColors]int
	for i := 0; i < NumFacelets; i++ {
		c, err := ParseColor(s[i])
		if err != nil {
			return err
		}
		cols[i] = c
		counts[c]++
	}
	for c := Color(0); c < NumColors; c++ {
		if counts[c] != 9 {
			return fmt.Errorf("%w: %d facelets of color %v, want 9", ErrInvalidFacecube, counts[c], c)
		}
	}
	for k := 0; k < NumColors; k++ {
		if cols[9*k+4] != Color(k) {
			return fmt.Errorf("%w: center of face %v is %v", ErrInvalidFacecube, Color(k), cols[9*k+4])
		}
	}

	cperm, corisum, err := resolveCubies(&cols, &cornerLayout, cornerFacelets[:])
	if err != nil {
		return err
	}
	eperm, eorisum, err := resolveCubies(&cols, &edgeLayout, toTriples(edgeFacelets[:]))
	if err != nil {
		return err
	}

	if corisum%3 != 0 {
		return fmt.Errorf("%w: corner orientation sum %d", ErrInvalidFacecube, corisum)
	}
	if eorisum%2 != 0 {
		return fmt.Errorf("%w: edge orientation sum %d", ErrInvalidFacecube, eorisum)
	}
	if permParity(cperm) != permParity(eperm) {
		return fmt.Errorf("%w: corner and edge parity differ", ErrInvalidFacecube)
	}
	return nil
}

// resolveCubies identifies the cubie and orientation in every slot, or
// fails if some slot shows a color combination no cubie has.
func resolveCubies(cols *[NumFacelets]Color, layout *kindLayout, slots [][3]int) ([]int8, int, error) {
	n := layout.nCubies
	perm := make([]int8, n)
	used := make([]bool, n)
	orisum := 0

	for slot := 0; slot < n; slot++ {
		found := false
		for cubie := 0; cubie < n && !found; cubie++ {
			for ori := 0; ori < layout.nOris; ori++ {
				match := true
				for p := 0; p < layout.nOris; p++ {
					if cols[slots[slot][p]] != layout.colors[cubie][(p+ori)%layout.nOris] {
						match = false
						break
					}
				}
				if match {
					if used[cubie] {
						return nil, 0, fmt.Errorf("%w: cubie %d appears twice", ErrInvalidFacecube, cubie)
					}
					used[cubie] = true
					perm[slot] = int8(cubie)
					orisum += ori
					found = true
					break
				}
			}
		}
		if !found {
			return nil, 0, fmt.Errorf("%w: slot %d holds no valid cubie", ErrInvalidFacecube, slot)
		}
	}
	return perm, orisum, nil
}

func permParity(perm []int8) int {
	inv := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inv++
			}
		}
	}
	return inv & 1
}

func toTriples(pairs [][2]int) [][3]int {
	out := make([][3]int, len(pairs))
	for i, p := range pairs {
		out[i][0] = p[0]
		out[i][1] = p[1]
	}
	return out
}
