package extract

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"github.com/SeamusWaldron/cubescan"
)

// Means averages the BGR pixels of every facelet's rectangles in a frame
// and rounds to bytes. Rectangles are clipped against the frame; a facelet
// whose rectangles all fall outside it is an error.
func Means(frame gocv.Mat, rects *Rects) ([cubescan.NumFacelets][3]uint8, error) {
	var out [cubescan.NumFacelets][3]uint8

	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	for f := 0; f < cubescan.NumFacelets; f++ {
		var sum [3]float64
		area := 0
		for _, r := range rects[f] {
			r = r.Intersect(bounds)
			if r.Empty() {
				continue
			}
			region := frame.Region(r)
			mean := region.Mean()
			n := r.Dx() * r.Dy()
			sum[0] += mean.Val1 * float64(n)
			sum[1] += mean.Val2 * float64(n)
			sum[2] += mean.Val3 * float64(n)
			area += n
			region.Close()
		}
		if area == 0 {
			return out, fmt.Errorf("extract: facelet %d outside the %dx%d frame", f, bounds.Dx(), bounds.Dy())
		}
		for c := 0; c < 3; c++ {
			v := math.Round(sum[c] / float64(area))
			if v > 255 {
				v = 255
			}
			out[f][c] = uint8(v)
		}
	}

	return out, nil
}
