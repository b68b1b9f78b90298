package cubescan

// builder tracks everything known about one kind of cubie (corners or
// edges): the per-slot option sets plus the aggregate permutation,
// orientation and parity state. It contains no owning references, so a
// snapshot is a plain value copy and a restore is a pointer swap.
type builder struct {
	layout *kindLayout

	colcounts [NumColors]int
	colsets   [numEdges]colorSet
	oris      [numEdges]int8
	perm      [numEdges]int8
	par       int8

	opts [numEdges]optionSet

	invcnt int
	orisum int
	aperm  int
	aoris  int
}

func (b *builder) init(layout *kindLayout) {
	b.layout = layout

	// Every color appears on exactly 4 slots of each kind.
	for c := range b.colcounts {
		b.colcounts[c] = 4
	}
	for i := 0; i < layout.nCubies; i++ {
		b.colsets[i] = 0
		b.oris[i] = -1
		b.perm[i] = -1
		b.opts[i].init(layout)
	}
	b.par = -1

	b.invcnt = 0
	b.orisum = 0
	b.aperm = 0
	b.aoris = 0
}

// parity returns the permutation parity, or -1 while it is still unknown.
func (b *builder) parity() int8 {
	return b.par
}

// assignCol asserts that the facelet at position pos of the given slot
// shows col. The assertion takes effect on the next propagate call.
func (b *builder) assignCol(slot, pos int8, col Color) {
	b.opts[slot].hasPosCol(pos, col)
}

// assignPar forces the permutation parity from the outside. Used to couple
// corner and edge parity, which are equal on any reachable cube.
func (b *builder) assignPar(par int8) {
	b.par = par
}

// assignCubie records a slot whose cubie identity became unanimous. The
// inversion count is updated against all already-assigned entries on both
// sides, and the identity is eliminated from every other slot.
func (b *builder) assignCubie(i int) bool {
	cubie := b.opts[i].cubie
	if cubie == -1 || b.perm[i] != -1 {
		return false
	}

	b.perm[i] = cubie
	for j := 0; j < i; j++ {
		if b.perm[j] != -1 && b.perm[j] > cubie {
			b.invcnt++
		}
	}
	for j := i + 1; j < b.layout.nCubies; j++ {
		if b.perm[j] != -1 && b.perm[j] < cubie {
			b.invcnt++
		}
	}
	b.aperm++
	if b.aperm == b.layout.nCubies {
		b.par = int8(b.invcnt & 1)
	}

	// Every cubie exists exactly once.
	for j := 0; j < b.layout.nCubies; j++ {
		if j != i {
			b.opts[j].isNotCubie(cubie)
		}
	}

	return true
}

// assignOri records a slot whose orientation became unanimous.
func (b *builder) assignOri(i int) bool {
	ori := b.opts[i].ori
	if ori == -1 || b.oris[i] != -1 {
		return false
	}

	b.oris[i] = ori
	b.orisum += int(ori)
	b.aoris++
	return true
}

// propagate runs all consistency rules to fixpoint. It returns false on a
// contradiction (some slot ran out of options); the caller is responsible
// for restoring the pre-assertion state.
func (b *builder) propagate() bool {
	n := b.layout.nCubies
	nOris := b.layout.nOris

	change := true
	for change {
		change = false

		for slot := 0; slot < n; slot++ {
			if b.opts[slot].err {
				return false
			}

			// colset only ever gains bits, so the XOR against the last
			// observed value is exactly the newly-forced colors.
			diff := b.opts[slot].colset ^ b.colsets[slot]
			b.colsets[slot] |= diff
			for col := Color(0); col < NumColors; col++ {
				if !diff.has(col) {
					continue
				}
				b.colcounts[col]--
				if b.colcounts[col] == 0 { // all slots of this color known
					for i := 0; i < n; i++ {
						// Some colset update might not have been registered yet.
						if !b.opts[i].colset.has(col) {
							b.opts[i].hasNotCol(col)
							change = true
						}
					}
				}
			}

			if b.assignOri(slot) {
				change = true
			}
			if b.assignCubie(slot) {
				change = true
			}
		}

		// The last orientation is forced: orientations sum to 0 mod nOris.
		if b.aoris == n-1 {
			lastori := int8((nOris - b.orisum%nOris) % nOris)
			for i := 0; i < n; i++ {
				if b.oris[i] == -1 {
					// Assign only on the next sweep so a contradiction shows
					// up as an empty residual instead of being masked here.
					b.opts[i].hasOri(lastori)
					break
				}
			}
			change = true
		}

		// The last two cubies are fixed by parity once it is known.
		if b.par != -1 && b.aperm == n-2 {
			i1 := -1
			i2 := -1
			var contained [numEdges]bool
			for i := 0; i < n; i++ {
				if b.perm[i] == -1 {
					if i1 == -1 {
						i1 = i
					} else {
						i2 = i
					}
				} else {
					contained[b.perm[i]] = true
				}
			}
			cubie1 := int8(0)
			for contained[cubie1] {
				cubie1++
			}
			cubie2 := cubie1 + 1
			for contained[cubie2] {
				cubie2++
			}

			invcnt1 := 0
			for i := 0; i < n; i++ {
				if b.perm[i] == -1 {
					continue
				}
				if i < i1 && b.perm[i] > cubie1 {
					invcnt1++
				}
				if i > i1 && b.perm[i] < cubie1 {
					invcnt1++
				}
				if i < i2 && b.perm[i] > cubie2 {
					invcnt1++
				}
				if i > i2 && b.perm[i] < cubie2 {
					invcnt1++
				}
			}
			if int8((b.invcnt+invcnt1)&1) != b.par {
				i1, i2 = i2, i1 // swap the positions to fix parity
			}

			b.opts[i1].isCubie(cubie1)
			b.opts[i2].isCubie(cubie2)
			change = true
		}
	}

	return true
}
