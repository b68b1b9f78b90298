// Package extract turns camera frames into the 54 per-facelet BGR samples
// the matcher consumes. The mapping from frame to facelets is configured by
// a rects file that lists, per facelet, the pixel rectangles covering it.
package extract

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/cubescan"
)

// DefaultRectsFile is the rects filename used when no explicit path is
// configured.
const DefaultRectsFile = "scan.rects"

// Rects holds, for every facelet, the pixel rectangles sampled for it.
// Facelets are in the same face-major, row-major order the matcher uses.
type Rects [cubescan.NumFacelets][]image.Rectangle

// LoadRects parses a rects file: 54 lines, one per facelet, each a
// whitespace-separated sequence of x y w h quadruples. Blank lines and
// lines starting with # are skipped. Every facelet needs at least one
// rectangle.
func LoadRects(path string) (*Rects, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("extract: open rects file: %w", err)
	}
	defer f.Close()

	var rects Rects
	facelet := 0
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if facelet >= cubescan.NumFacelets {
			return nil, fmt.Errorf("extract: rects file %s has more than %d facelet lines", path, cubescan.NumFacelets)
		}

		fields := strings.Fields(text)
		if len(fields)%4 != 0 {
			return nil, fmt.Errorf("extract: rects file %s line %d: %d values, want multiple of 4", path, line, len(fields))
		}
		for i := 0; i < len(fields); i += 4 {
			vals := make([]int, 4)
			for j := 0; j < 4; j++ {
				v, err := strconv.Atoi(fields[i+j])
				if err != nil {
					return nil, fmt.Errorf("extract: rects file %s line %d: %w", path, line, err)
				}
				vals[j] = v
			}
			x, y, w, h := vals[0], vals[1], vals[2], vals[3]
			if w <= 0 || h <= 0 {
				return nil, fmt.Errorf("extract: rects file %s line %d: empty rectangle", path, line)
			}
			rects[facelet] = append(rects[facelet], image.Rect(x, y, x+w, y+h))
		}
		facelet++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("extract: read rects file: %w", err)
	}

	if facelet != cubescan.NumFacelets {
		return nil, fmt.Errorf("extract: rects file %s has %d facelet lines, want %d", path, facelet, cubescan.NumFacelets)
	}
	return &rects, nil
}
