// Package cli implements the command-line interface for cubescan.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/extract"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	tablePath string
	rectsPath string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubescan",
	Short: "Cube scanner",
	Long: `Cube scanner - match camera readings of a Rubik's cube against the
set of physically possible cubes.

Point the rig cameras at the cube, scan, and get back the 54-letter facelet
string, even under lighting that fools plain nearest-color matching. Train
the confidence table from your own labeled scans to adapt to your rig.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubescan/cubescan.db)")
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", cubescan.DefaultTableFile, "Confidence table file")
	rootCmd.PersistentFlags().StringVar(&rectsPath, "rects", extract.DefaultRectsFile, "Facelet rectangles file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the flag or default path and migrates it.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	if verbose {
		fmt.Printf("Database: %s\n", db.Path())
	}
	return db, nil
}

// loadMatcher loads the confidence table and wraps it in a matcher.
func loadMatcher() (*cubescan.Matcher, error) {
	table, err := cubescan.LoadTable(tablePath)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Confidence table: %s\n", tablePath)
	}
	return cubescan.NewMatcher(table), nil
}

// loadRects loads the facelet rectangles file.
func loadRects() (*extract.Rects, error) {
	rects, err := extract.LoadRects(rectsPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Rects file: %s\n", rectsPath)
	}
	return rects, nil
}
