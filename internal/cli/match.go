package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

var (
	matchPlain    bool
	matchNoRecord bool
)

var matchCmd = &cobra.Command{
	Use:   "match [samples.json]",
	Short: "Match 54 BGR samples against the cube constraints",
	Long: `Match reads 54 BGR triples (a JSON array of [b,g,r] byte triples in
face-major U,R,F,D,L,B order, each face row-major) from the given file or
stdin, runs the matcher and prints the resulting 54-letter facelet string.

Prints "Scan Error." and exits nonzero when the samples cannot belong to
any real cube within the search budget.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchPlain, "plain", false, "Print only the facelet string, no cube net")
	matchCmd.Flags().BoolVar(&matchNoRecord, "no-record", false, "Do not record the scan to the database")
	rootCmd.AddCommand(matchCmd)
}

// readSamples decodes the 54 BGR triples from a file or stdin.
func readSamples(args []string) ([cubescan.NumFacelets][3]uint8, error) {
	var bgrs [cubescan.NumFacelets][3]uint8

	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return bgrs, fmt.Errorf("failed to open samples file: %w", err)
		}
		defer f.Close()
		in = f
	}

	if err := json.NewDecoder(in).Decode(&bgrs); err != nil {
		return bgrs, fmt.Errorf("failed to decode samples: %w", err)
	}
	return bgrs, nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	bgrs, err := readSamples(args)
	if err != nil {
		return err
	}

	matcher, err := loadMatcher()
	if err != nil {
		return err
	}

	start := time.Now()
	facecube, err := matcher.Match(bgrs)
	elapsed := time.Since(start)

	if !matchNoRecord {
		if dbErr := recordScan(bgrs, facecube, elapsed); dbErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record scan: %v\n", dbErr)
		}
	}

	if err != nil {
		if errors.Is(err, cubescan.ErrScan) {
			fmt.Println("Scan Error.")
		}
		return err
	}

	if matchPlain {
		fmt.Println(facecube)
	} else {
		fmt.Println(RenderNet(facecube))
		fmt.Println(facecube)
	}
	if verbose {
		fmt.Printf("Matched in %s\n", elapsed)
	}
	return nil
}

// recordScan stores a match attempt and, on success, its labeled samples.
func recordScan(bgrs [cubescan.NumFacelets][3]uint8, facecube string, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scanID, err := storage.NewScanRepository(db).Create(bgrs, facecube, elapsed)
	if err != nil {
		return err
	}
	if facecube == "" {
		return nil
	}
	return storage.NewSampleRepository(db).HarvestScan(scanID, bgrs, facecube)
}
