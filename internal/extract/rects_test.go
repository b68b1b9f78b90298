package extract

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubescan"
)

// writeRects writes a rects file with the given lines.
func writeRects(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultRectsFile)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// gridLines produces 54 one-rect lines laid out on a grid.
func gridLines() []string {
	lines := make([]string, cubescan.NumFacelets)
	for f := range lines {
		lines[f] = fmt.Sprintf("%d %d 10 10", (f%9)*12, (f/9)*12)
	}
	return lines
}

func TestLoadRects(t *testing.T) {
	lines := gridLines()
	// Facelet 7 samples two rectangles.
	lines[7] = "0 0 4 4   100 200 8 2"
	// Comments and blank lines are ignored.
	lines = append([]string{"# rig calibration", ""}, lines...)

	path := writeRects(t, lines)
	rects, err := LoadRects(path)
	if err != nil {
		t.Fatalf("LoadRects: %v", err)
	}

	if got := len(rects[7]); got != 2 {
		t.Fatalf("facelet 7 has %d rects, want 2", got)
	}
	if want := image.Rect(100, 200, 108, 202); rects[7][1] != want {
		t.Errorf("facelet 7 rect = %v, want %v", rects[7][1], want)
	}
	if got := len(rects[0]); got != 1 {
		t.Errorf("facelet 0 has %d rects, want 1", got)
	}
}

func TestLoadRectsErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"too few lines", gridLines()[:53]},
		{"too many lines", append(gridLines(), "0 0 1 1")},
		{"not quadruples", append(gridLines()[:53], "0 0 10")},
		{"not a number", append(gridLines()[:53], "0 0 x 10")},
		{"empty rectangle", append(gridLines()[:53], "0 0 0 10")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadRects(writeRects(t, tc.lines)); err == nil {
				t.Error("invalid rects file accepted")
			}
		})
	}
}

func TestLoadRectsMissing(t *testing.T) {
	if _, err := LoadRects(filepath.Join(t.TempDir(), "nope.rects")); err == nil {
		t.Error("missing rects file accepted")
	}
}
