package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/extract"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

var (
	camUp   int
	camDown int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Drive the scanning rig over a stdin command loop",
	Long: `Scan opens the rig cameras and reads commands from stdin, one per
line, printing "Ready!" before each. This is the wire protocol the solving
machine's controller speaks.

Commands:
  start        - start camera streaming
  stop         - stop camera streaming
  scan         - grab a frame, extract and match; prints the facelet
                 string, or "Scan Error." on a bad scan
  save <file>  - write the current camera frame to an image file
  quit         - exit

Anything else prints "Error.".`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&camUp, "cam-up", 0, "Device ID of the upper camera")
	scanCmd.Flags().IntVar(&camDown, "cam-down", 1, "Device ID of the lower camera")
	rootCmd.AddCommand(scanCmd)
}

// scanRig bundles everything one scan needs.
type scanRig struct {
	cam     *extract.DoubleCam
	rects   *extract.Rects
	matcher *cubescan.Matcher
	db      *storage.DB
}

// scanOnce grabs a frame and runs it through extraction and matching. The
// attempt is recorded; successful scans also feed the training samples.
func (r *scanRig) scanOnce() (string, error) {
	frame, err := r.cam.Frame()
	if err != nil {
		return "", err
	}
	defer frame.Close()

	bgrs, err := extract.Means(frame, r.rects)
	if err != nil {
		return "", err
	}

	start := time.Now()
	facecube, err := r.matcher.Match(bgrs)
	elapsed := time.Since(start)

	if r.db != nil {
		scanID, dbErr := storage.NewScanRepository(r.db).Create(bgrs, facecube, elapsed)
		if dbErr == nil && facecube != "" {
			dbErr = storage.NewSampleRepository(r.db).HarvestScan(scanID, bgrs, facecube)
		}
		if dbErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record scan: %v\n", dbErr)
		}
	}

	return facecube, err
}

func runScan(cmd *cobra.Command, args []string) error {
	matcher, err := loadMatcher()
	if err != nil {
		return err
	}
	rects, err := loadRects()
	if err != nil {
		return err
	}
	cam, err := extract.OpenDoubleCam(camUp, camDown)
	if err != nil {
		return err
	}
	defer cam.Close()

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: running without scan recording: %v\n", err)
		db = nil
	} else {
		defer db.Close()
	}

	rig := &scanRig{cam: cam, rects: rects, matcher: matcher, db: db}

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Ready!")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			fmt.Println("Error.")
			continue
		}

		switch fields[0] {
		case "start":
			cam.Start()

		case "stop":
			cam.Stop()

		case "scan":
			facecube, err := rig.scanOnce()
			switch {
			case err == nil:
				fmt.Println(facecube)
			case errors.Is(err, cubescan.ErrScan):
				fmt.Println("Scan Error.")
			default:
				fmt.Fprintln(os.Stderr, err)
				fmt.Println("Scan Error.")
			}

		case "save":
			if len(fields) != 2 {
				fmt.Println("Error.")
				continue
			}
			if err := cam.SaveFrame(fields[1]); err != nil {
				fmt.Fprintln(os.Stderr, err)
				fmt.Println("Error.")
			}

		case "quit":
			return nil

		default:
			fmt.Println("Error.")
		}
	}
}
