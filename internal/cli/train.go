package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan/internal/storage"
	"github.com/SeamusWaldron/cubescan/internal/train"
)

var (
	trainDataDir string
	trainOut     string
	trainNoDB    bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Build the confidence table from labeled scans",
	Long: `Train builds the confidence table from labeled data and writes it to
the output file.

Labeled data comes from two places: images in the data directory whose
file name is the cube's 54-letter facelet string (extracted through the
rects file), and the samples recorded from confirmed scans in the
database. Either source alone is enough.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainDataDir, "data", "", "Directory of labeled frame images")
	trainCmd.Flags().StringVar(&trainOut, "out", "", "Output table file (default: the --table path)")
	trainCmd.Flags().BoolVar(&trainNoDB, "no-db", false, "Ignore samples recorded in the database")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	var labeled []train.Labeled

	if trainDataDir != "" {
		rects, err := loadRects()
		if err != nil {
			return err
		}
		fromImages, err := train.LoadImageDir(trainDataDir, rects)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Samples from %s: %d\n", trainDataDir, len(fromImages))
		}
		labeled = append(labeled, fromImages...)
	}

	if !trainNoDB {
		db, err := openDB()
		if err != nil {
			return err
		}
		samples, err := storage.NewSampleRepository(db).All()
		db.Close()
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Samples from database: %d\n", len(samples))
		}
		labeled = append(labeled, train.FromSamples(samples)...)
	}

	if len(labeled) == 0 {
		return fmt.Errorf("no training samples; pass --data or record scans first")
	}

	points, err := train.Preprocess(labeled)
	if err != nil {
		return err
	}
	knn := train.NewKNN(points)
	fmt.Printf("Training on %d samples (k=%d)\n", len(labeled), knn.K())

	out := trainOut
	if out == "" {
		out = tablePath
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}

	err = train.WriteTable(f, knn, func(done int) {
		if verbose || done%32 == 0 {
			fmt.Printf("  %d/256 planes\n", done)
		}
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(out)
		return err
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}
