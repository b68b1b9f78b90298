package train

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/extract"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

// LoadImageDir harvests labeled samples from a directory of rig frames.
// Every *.png or *.jpg whose base name is a valid 54-letter facelet string
// contributes one sample per facelet; other files are skipped.
func LoadImageDir(dir string, rects *extract.Rects) ([]Labeled, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("train: read data directory: %w", err)
	}

	var labeled []Labeled
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".png" && ext != ".jpg" {
			continue
		}
		facecube := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if cubescan.ValidateFacecube(facecube) != nil {
			continue
		}

		path := filepath.Join(dir, e.Name())
		img := gocv.IMRead(path, gocv.IMReadColor)
		if img.Empty() {
			return nil, fmt.Errorf("train: cannot read image %s", path)
		}
		bgrs, err := extract.Means(img, rects)
		img.Close()
		if err != nil {
			return nil, fmt.Errorf("train: %s: %w", path, err)
		}

		for f := 0; f < cubescan.NumFacelets; f++ {
			c, err := cubescan.ParseColor(facecube[f])
			if err != nil {
				return nil, err
			}
			labeled = append(labeled, Labeled{BGR: bgrs[f], Color: c})
		}
	}

	return labeled, nil
}

// FromSamples converts stored scan samples into training samples.
func FromSamples(samples []storage.Sample) []Labeled {
	labeled := make([]Labeled, len(samples))
	for i, s := range samples {
		labeled[i] = Labeled{BGR: s.BGR, Color: s.Color}
	}
	return labeled
}
