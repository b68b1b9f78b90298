package cubescan

// cubieOption is one (cubie, orientation) hypothesis for a slot. The struct
// is kept small so whole option sets can be copied cheaply.
type cubieOption struct {
	cols   [3]Color
	colset colorSet
	ori    int8
	cubie  int8
}

// optionSet holds the residual hypotheses for one slot. Storage is inline
// and fixed-capacity so the containing builder stays trivially copyable;
// snapshotting a builder is a plain value assignment.
//
// Every operation that shrinks the residual refreshes the derived fields
// (colset, ori, cubie, err) exactly when the residual actually shrank.
type optionSet struct {
	opts [24]cubieOption
	rem  int

	err    bool
	colset colorSet
	ori    int8
	cubie  int8
}

// init populates the full residual of layout.nCubies * layout.nOris options
// and resets the derived fields.
func (s *optionSet) init(layout *kindLayout) {
	i := 0
	for cubie := 0; cubie < layout.nCubies; cubie++ {
		for ori := 0; ori < layout.nOris; ori++ {
			o := &s.opts[i]
			o.cubie = int8(cubie)
			o.ori = int8(ori)
			o.colset = 0
			for p := 0; p < layout.nOris; p++ {
				o.cols[p] = layout.colors[cubie][(p+ori)%layout.nOris]
				o.colset |= 1 << o.cols[p]
			}
			i++
		}
	}
	s.rem = i

	s.err = false
	s.colset = 0
	s.ori = -1
	s.cubie = -1
}

// update refreshes the derived fields after the residual shrank. colset is
// the intersection over all remaining options; ori and cubie become known
// once unanimous and are never recomputed after that.
func (s *optionSet) update() {
	if s.rem == 0 {
		s.err = true
		return
	}

	s.colset = s.opts[0].colset
	for i := 1; i < s.rem; i++ {
		s.colset &= s.opts[i].colset
	}

	if s.ori == -1 {
		single := s.opts[0].ori
		for i := 1; i < s.rem; i++ {
			if s.opts[i].ori != single {
				single = -1
				break
			}
		}
		if single != -1 {
			s.ori = single
		}
	}

	if s.cubie == -1 {
		single := s.opts[0].cubie
		for i := 1; i < s.rem; i++ {
			if s.opts[i].cubie != single {
				single = -1
				break
			}
		}
		if single != -1 {
			s.cubie = single
		}
	}
}

// hasPosCol retains only options showing col at position pos.
func (s *optionSet) hasPosCol(pos int8, col Color) {
	rem := 0
	for i := 0; i < s.rem; i++ {
		if s.opts[i].cols[pos] == col {
			s.opts[rem] = s.opts[i]
			rem++
		}
	}
	if rem != s.rem {
		s.rem = rem
		s.update()
	}
}

// hasNotCol retains only options whose color set excludes col.
func (s *optionSet) hasNotCol(col Color) {
	rem := 0
	for i := 0; i < s.rem; i++ {
		if !s.opts[i].colset.has(col) {
			s.opts[rem] = s.opts[i]
			rem++
		}
	}
	if rem != s.rem {
		s.rem = rem
		s.update()
	}
}

// hasOri retains only options with orientation ori.
func (s *optionSet) hasOri(ori int8) {
	rem := 0
	for i := 0; i < s.rem; i++ {
		if s.opts[i].ori == ori {
			s.opts[rem] = s.opts[i]
			rem++
		}
	}
	if rem != s.rem {
		s.rem = rem
		s.update()
	}
}

// isCubie retains only options with the given cubie identity.
func (s *optionSet) isCubie(cubie int8) {
	rem := 0
	for i := 0; i < s.rem; i++ {
		if s.opts[i].cubie == cubie {
			s.opts[rem] = s.opts[i]
			rem++
		}
	}
	if rem != s.rem {
		s.rem = rem
		s.update()
	}
}

// isNotCubie drops all options with the given cubie identity.
func (s *optionSet) isNotCubie(cubie int8) {
	rem := 0
	for i := 0; i < s.rem; i++ {
		if s.opts[i].cubie != cubie {
			s.opts[rem] = s.opts[i]
			rem++
		}
	}
	if rem != s.rem {
		s.rem = rem
		s.update()
	}
}
