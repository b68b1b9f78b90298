package cubescan

// NumFacelets is the number of visible stickers on a 3x3 cube.
const NumFacelets = 54

// Facelets are indexed face-major in the order U, R, F, D, L, B with each
// face enumerated row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Index 4 of every face is the center; its color is fixed by the face.

// Corner cubie identities.
const (
	urf = iota
	ufl
	ulb
	ubr
	dfr
	dlf
	dbl
	drb

	numCorners = 8
)

// Edge cubie identities.
const (
	ur = iota
	uf
	ul
	ub
	dr
	df
	dl
	db
	fr
	fl
	bl
	br

	numEdges = 12
)

// fromFacelet maps a facelet to the slot it sits on. Corner facelets
// (even index within the face) map into the corner slots, edge facelets
// (odd index) into the edge slots; centers map to -1.
var fromFacelet = [NumFacelets]int8{
	ulb, ub, ubr, ul, -1, ur, ufl, uf, urf,
	urf, ur, ubr, fr, -1, br, dfr, dr, drb,
	ufl, uf, urf, fl, -1, fr, dlf, df, dfr,
	dlf, df, dfr, dl, -1, dr, dbl, db, drb,
	ulb, ul, ufl, bl, -1, fl, dbl, dl, dlf,
	ubr, ub, ulb, br, -1, bl, drb, db, dbl,
}

// faceletToPos maps a facelet to its position on the corresponding cubie.
var faceletToPos = [NumFacelets]int8{
	0, 0, 0, 0, -1, 0, 0, 0, 0,
	1, 1, 2, 1, -1, 1, 2, 1, 1,
	1, 1, 2, 0, -1, 0, 2, 1, 1,
	0, 0, 0, 0, -1, 0, 0, 0, 0,
	1, 1, 2, 1, -1, 1, 2, 1, 1,
	1, 1, 2, 0, -1, 0, 2, 1, 1,
}

// isEdgeFacelet reports whether facelet f sits on an edge cubie.
func isEdgeFacelet(f int) bool {
	return (f%9)%2 == 1
}

// isCenterFacelet reports whether facelet f is a face center.
func isCenterFacelet(f int) bool {
	return f%9 == 4
}

// kindLayout describes one kind of cubie (corners or edges): how many there
// are, how many orientations each has, and the canonical colors of every
// cubie identity at orientation 0.
type kindLayout struct {
	nCubies int
	nOris   int
	colors  [numEdges][3]Color
}

var cornerLayout = kindLayout{
	nCubies: numCorners,
	nOris:   3,
	colors: [numEdges][3]Color{
		{U, R, F}, {U, F, L}, {U, L, B}, {U, B, R},
		{D, F, R}, {D, L, F}, {D, B, L}, {D, R, B},
	},
}

var edgeLayout = kindLayout{
	nCubies: numEdges,
	nOris:   2,
	colors: [numEdges][3]Color{
		{U, R}, {U, F}, {U, L}, {U, B},
		{D, R}, {D, F}, {D, L}, {D, B},
		{F, R}, {F, L}, {B, L}, {B, R},
	},
}

// cornerFacelets and edgeFacelets are the inverses of fromFacelet and
// faceletToPos: the facelet indices of every slot in position order.
var (
	cornerFacelets [numCorners][3]int
	edgeFacelets   [numEdges][2]int
)

func init() {
	for f := 0; f < NumFacelets; f++ {
		slot := fromFacelet[f]
		if slot < 0 {
			continue
		}
		pos := faceletToPos[f]
		if isEdgeFacelet(f) {
			edgeFacelets[slot][pos] = f
		} else {
			cornerFacelets[slot][pos] = f
		}
	}
}
