package cubescan

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTableConfidenceOffsets(t *testing.T) {
	raw := make([]byte, TableBytes)
	set := func(b, g, r uint8, row [NumColors]uint16) {
		off := (int(b)<<16 | int(g)<<8 | int(r)) * NumColors * 2
		for c := 0; c < NumColors; c++ {
			binary.LittleEndian.PutUint16(raw[off+2*c:], row[c])
		}
	}

	first := [NumColors]uint16{1, 2, 3, 4, 5, 6}
	mid := [NumColors]uint16{100, 0, 0, 0, 0, 9000}
	last := [NumColors]uint16{65535, 0, 1, 0, 0, 0}
	set(0, 0, 0, first)
	set(17, 42, 99, mid)
	set(255, 255, 255, last)

	tbl := &Table{raw: raw}
	if got := tbl.Confidence(0, 0, 0); got != first {
		t.Errorf("Confidence(0,0,0) = %v, want %v", got, first)
	}
	if got := tbl.Confidence(17, 42, 99); got != mid {
		t.Errorf("Confidence(17,42,99) = %v, want %v", got, mid)
	}
	if got := tbl.Confidence(255, 255, 255); got != last {
		t.Errorf("Confidence(255,255,255) = %v, want %v", got, last)
	}
	if got := tbl.Confidence(17, 42, 100); got != ([NumColors]uint16{}) {
		t.Errorf("unset entry = %v, want zero row", got)
	}
}

func TestLoadTableMissing(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.tbl"))
	if err == nil {
		t.Fatal("LoadTable on missing file succeeded")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestLoadTableTruncated(t *testing.T) {
	for _, size := range []int{0, 1, 4096} {
		path := filepath.Join(t.TempDir(), DefaultTableFile)
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadTable(path)
		if !errors.Is(err, ErrTableTruncated) {
			t.Errorf("size %d: error %v, want ErrTableTruncated", size, err)
		}
	}
}
