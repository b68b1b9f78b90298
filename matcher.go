package cubescan

import "container/heap"

// assignment is a tentative facelet-color hypothesis queued by confidence.
type assignment struct {
	conf    int
	facelet int
	color   Color
}

// assignmentHeap is a max-heap over assignments. Ties are broken by facelet
// and then color so identical inputs always replay identically.
type assignmentHeap []assignment

func (h assignmentHeap) Len() int { return len(h) }

func (h assignmentHeap) Less(i, j int) bool {
	if h[i].conf != h[j].conf {
		return h[i].conf > h[j].conf
	}
	if h[i].facelet != h[j].facelet {
		return h[i].facelet < h[j].facelet
	}
	return h[i].color < h[j].color
}

func (h assignmentHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *assignmentHeap) Push(x any) { *h = append(*h, x.(assignment)) }

func (h *assignmentHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Matcher assigns cube colors to raw per-facelet BGR samples. It combines
// the learned confidence scores with full constraint propagation over the
// cubie structure, assigning facelets in order of confidence and
// backtracking on contradictions.
//
// A Matcher holds no per-call state and is safe for concurrent use; the
// underlying confidence source is only read.
type Matcher struct {
	src ConfidenceSource
	cfg *config
}

// NewMatcher creates a Matcher backed by the given confidence source,
// typically a *Table loaded with LoadTable.
func NewMatcher(src ConfidenceSource, opts ...Option) *Matcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Matcher{src: src, cfg: cfg}
}

// Match resolves 54 BGR samples (face-major, row-major facelet order) into
// a 54-letter facelet string. It returns ErrScan when no physically
// realizable assignment is found within the per-facelet attempt budget.
func (m *Matcher) Match(bgrs [NumFacelets][3]uint8) (string, error) {
	var conf [NumFacelets][NumColors]int
	for f := 0; f < NumFacelets; f++ {
		row := m.src.Confidence(bgrs[f][0], bgrs[f][1], bgrs[f][2])
		for c := 0; c < NumColors; c++ {
			conf[f][c] = int(row[c])
		}
	}

	var facecube [NumFacelets]Color
	h := make(assignmentHeap, 0, NumFacelets-NumColors)
	for f := 0; f < NumFacelets; f++ {
		if isCenterFacelet(f) { // centers are fixed
			facecube[f] = Color(f / 9)
			continue
		}
		best := argmax(&conf[f])
		h = append(h, assignment{conf: conf[f][best], facelet: f, color: Color(best)})
		conf[f][best] = -1 // marks this color as already tried
	}
	heap.Init(&h)

	var attempts [NumFacelets]int
	for f := range attempts {
		attempts[f] = m.cfg.attempts
	}

	corners := &builder{}
	edges := &builder{}
	corners.init(&cornerLayout)
	edges.init(&edgeLayout)
	// Shadows take snapshots by value copy; a restore is a pointer swap.
	cornersShadow := &builder{}
	edgesShadow := &builder{}

	for h.Len() > 0 {
		as := heap.Pop(&h).(assignment)
		f := as.facelet
		slot := fromFacelet[f]
		pos := faceletToPos[f]
		col := as.color

		var ok bool
		if isEdgeFacelet(f) {
			*edgesShadow = *edges
			edges.assignCol(slot, pos, col)
			if ok = edges.propagate(); !ok {
				edges, edgesShadow = edgesShadow, edges
			} else if edges.parity() != -1 && corners.parity() == -1 {
				*cornersShadow = *corners
				corners.assignPar(edges.parity())
				if ok = corners.propagate(); !ok {
					edges, edgesShadow = edgesShadow, edges
					corners, cornersShadow = cornersShadow, corners
				}
			}
		} else {
			*cornersShadow = *corners
			corners.assignCol(slot, pos, col)
			if ok = corners.propagate(); !ok {
				corners, cornersShadow = cornersShadow, corners
			} else if corners.parity() != -1 && edges.parity() == -1 {
				*edgesShadow = *edges
				edges.assignPar(corners.parity())
				if ok = edges.propagate(); !ok {
					corners, cornersShadow = cornersShadow, corners
					edges, edgesShadow = edgesShadow, edges
				}
			}
		}

		if !ok {
			next := argmax(&conf[f])
			if conf[f][next] == -1 { // all six colors tried
				return "", ErrScan
			}
			attempts[f]--
			if attempts[f] < 0 {
				return "", ErrScan
			}
			heap.Push(&h, assignment{conf: conf[f][next], facelet: f, color: Color(next)})
			conf[f][next] = -1
			continue
		}
		facecube[f] = col
	}

	out := make([]byte, NumFacelets)
	for f, c := range facecube {
		out[f] = colorChars[c]
	}
	return string(out), nil
}

// argmax returns the index of the largest entry.
func argmax(row *[NumColors]int) int {
	best := 0
	for c := 1; c < NumColors; c++ {
		if row[c] > row[best] {
			best = c
		}
	}
	return best
}
