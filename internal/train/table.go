package train

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/SeamusWaldron/cubescan"
)

// WriteTable emits the full confidence table: for all 2^24 BGR values in
// b-major g-then-r order, the six per-color vote counts as little-endian
// uint16. The output is exactly cubescan.TableBytes long and loadable with
// cubescan.LoadTable.
//
// The table is produced one blue plane (65536 pixels) at a time, with the
// KNN queries of a plane spread over all CPUs. progress, if non-nil, is
// called after each finished plane with the number of planes done out of
// 256.
func WriteTable(w io.Writer, m *KNN, progress func(done int)) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	buf := make([]byte, 256*256*cubescan.NumColors*2)

	for b := 0; b < 256; b++ {
		coords, err := planeCoords(uint8(b))
		if err != nil {
			return err
		}

		votePlane(m, coords, buf)

		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("train: write table: %w", err)
		}
		if progress != nil {
			progress(b + 1)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("train: write table: %w", err)
	}
	return nil
}

// votePlane fills buf with the encoded votes for one plane of coordinates.
func votePlane(m *KNN, coords [][3]float64, buf []byte) {
	workers := runtime.NumCPU()
	var wg sync.WaitGroup
	chunk := (len(coords) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(coords) {
			hi = len(coords)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				votes := m.Votes(coords[i])
				off := i * cubescan.NumColors * 2
				for c := 0; c < cubescan.NumColors; c++ {
					binary.LittleEndian.PutUint16(buf[off+2*c:], votes[c])
				}
			}
		}(lo, hi)
	}
	wg.Wait()
}
