package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent scans",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of scans to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScanRepository(db)
	scans, err := repo.ListRecent(historyLimit)
	if err != nil {
		return err
	}

	if len(scans) == 0 {
		fmt.Println("No scans recorded yet.")
		return nil
	}

	for _, s := range scans {
		result := s.Facecube
		if !s.Success {
			result = "scan error"
		}
		fmt.Printf("%s  %s  %4dms  %s\n", s.ScanID[:8], s.CreatedAt, s.DurationMs, result)
	}

	stats, err := repo.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("\n%d scans, %d matched (%.0f%%)\n", stats.Total, stats.Succeeded, stats.SuccessRate()*100)
	return nil
}
