package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubescan"
)

// Sample is one labeled facelet reading: a raw BGR value plus the color it
// turned out to be.
type Sample struct {
	SampleID int64
	ScanID   string
	Facelet  int
	BGR      [3]uint8
	Color    cubescan.Color
}

// SampleRepository provides CRUD operations for training samples.
type SampleRepository struct {
	db *DB
}

// NewSampleRepository creates a new sample repository.
func NewSampleRepository(db *DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// HarvestScan stores the 54 labeled samples of a successfully matched scan
// in a single transaction.
func (r *SampleRepository) HarvestScan(scanID string, bgrs [cubescan.NumFacelets][3]uint8, facecube string) error {
	if err := cubescan.ValidateFacecube(facecube); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO samples (scan_id, facelet, b, g, r, color)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare sample insert: %w", err)
		}
		defer stmt.Close()

		for f := 0; f < cubescan.NumFacelets; f++ {
			_, err := stmt.Exec(scanID, f, bgrs[f][0], bgrs[f][1], bgrs[f][2], string(facecube[f]))
			if err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
		}
		return nil
	})
}

// All retrieves every stored sample, oldest scan first.
func (r *SampleRepository) All() ([]Sample, error) {
	rows, err := r.db.Query(`
		SELECT sample_id, scan_id, facelet, b, g, r, color
		FROM samples
		ORDER BY sample_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get samples: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var s Sample
		var color string
		err := rows.Scan(&s.SampleID, &s.ScanID, &s.Facelet, &s.BGR[0], &s.BGR[1], &s.BGR[2], &color)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		c, err := cubescan.ParseColor(color[0])
		if err != nil {
			return nil, err
		}
		s.Color = c
		samples = append(samples, s)
	}

	return samples, nil
}

// Count returns the number of stored samples.
func (r *SampleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM samples").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count samples: %w", err)
	}
	return count, nil
}
