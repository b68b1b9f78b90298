// Package train builds the confidence table from labeled facelet samples.
// Samples are mapped into a color space where the six cube colors are
// roughly equidistant, a k-nearest-neighbour model votes on every possible
// BGR value, and the vote counts become the table entries.
package train

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"github.com/SeamusWaldron/cubescan"
)

// Labeled is one training sample: a raw BGR reading and the color it was.
type Labeled struct {
	BGR   [3]uint8
	Color cubescan.Color
}

// Point is a preprocessed sample in the warped color space.
type Point struct {
	Coords [3]float64
	Color  cubescan.Color
}

// The six cube colors sit at uneven hue distances: red and orange are 30
// degrees apart while blue and red are 120. hueAnchors lists the nominal
// hues (degrees) of red, orange, yellow, green, blue and red again; warping
// them onto five equal sectors equalizes the distances.
var (
	hueAnchors   = [6]float64{0, 30, 60, 120, 240, 360}
	warpedAngles = [6]float64{0, 72, 144, 216, 288, 360}
)

// warpHue maps a hue in degrees onto the equalized circle, in radians.
func warpHue(h float64) float64 {
	i := 1
	for i < 5 && h > hueAnchors[i] {
		i++
	}
	t := (h - hueAnchors[i-1]) / (hueAnchors[i] - hueAnchors[i-1])
	deg := warpedAngles[i-1] + t*(warpedAngles[i]-warpedAngles[i-1])
	return deg * math.Pi / 180
}

// hsvToCoords places one HSV pixel (OpenCV byte scale, hue 0..179) in the
// warped space: the hue angle becomes a point on a circle with radius
// saturation, and value is the third axis.
func hsvToCoords(h, s, v uint8) [3]float64 {
	angle := warpHue(2 * float64(h))
	sat := float64(s)
	return [3]float64{math.Cos(angle) * sat, math.Sin(angle) * sat, float64(v)}
}

// toHSV converts a packed BGR byte slice through OpenCV and returns the
// packed HSV bytes.
func toHSV(bgr []byte) ([]byte, error) {
	src, err := gocv.NewMatFromBytes(1, len(bgr)/3, gocv.MatTypeCV8UC3, bgr)
	if err != nil {
		return nil, fmt.Errorf("train: wrap pixels: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToHSV)

	out, err := dst.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("train: read converted pixels: %w", err)
	}
	cp := make([]byte, len(out))
	copy(cp, out)
	return cp, nil
}

// Preprocess maps labeled BGR samples into the warped color space.
func Preprocess(labeled []Labeled) ([]Point, error) {
	if len(labeled) == 0 {
		return nil, fmt.Errorf("train: no samples")
	}

	bgr := make([]byte, 0, 3*len(labeled))
	for _, l := range labeled {
		bgr = append(bgr, l.BGR[0], l.BGR[1], l.BGR[2])
	}
	hsv, err := toHSV(bgr)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(labeled))
	for i, l := range labeled {
		points[i] = Point{
			Coords: hsvToCoords(hsv[3*i], hsv[3*i+1], hsv[3*i+2]),
			Color:  l.Color,
		}
	}
	return points, nil
}

// planeCoords preprocesses all 65536 BGR values with the given blue
// component, in g-major r-minor order.
func planeCoords(b uint8) ([][3]float64, error) {
	bgr := make([]byte, 0, 3*256*256)
	for g := 0; g < 256; g++ {
		for r := 0; r < 256; r++ {
			bgr = append(bgr, b, uint8(g), uint8(r))
		}
	}
	hsv, err := toHSV(bgr)
	if err != nil {
		return nil, err
	}

	coords := make([][3]float64, 256*256)
	for i := range coords {
		coords[i] = hsvToCoords(hsv[3*i], hsv[3*i+1], hsv[3*i+2])
	}
	return coords, nil
}
