package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubescan"
)

// Scan represents one recorded match attempt.
type Scan struct {
	ScanID     string
	CreatedAt  string
	BGRs       [cubescan.NumFacelets][3]uint8
	Facecube   string
	Success    bool
	DurationMs int64
}

// Stats summarizes the recorded scans.
type Stats struct {
	Total     int
	Succeeded int
}

// SuccessRate returns the fraction of successful scans, or 0 with no scans.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}

// ScanRepository provides CRUD operations for scans.
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new scan repository.
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create records a match attempt and returns its ID. facecube is empty and
// success false for failed matches.
func (r *ScanRepository) Create(bgrs [cubescan.NumFacelets][3]uint8, facecube string, duration time.Duration) (string, error) {
	bgrsJSON, err := json.Marshal(bgrs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal samples: %w", err)
	}

	id := uuid.NewString()
	success := 0
	if facecube != "" {
		success = 1
	}

	_, err = r.db.Exec(`
		INSERT INTO scans (scan_id, bgrs_json, facecube, success, duration_ms)
		VALUES (?, ?, ?, ?, ?)
	`, id, string(bgrsJSON), facecube, success, duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to create scan: %w", err)
	}

	return id, nil
}

// Get retrieves a single scan by ID.
func (r *ScanRepository) Get(scanID string) (*Scan, error) {
	row := r.db.QueryRow(`
		SELECT scan_id, created_at, bgrs_json, facecube, success, duration_ms
		FROM scans
		WHERE scan_id = ?
	`, scanID)
	return scanScan(row)
}

// ListRecent retrieves the most recent scans, newest first.
func (r *ScanRepository) ListRecent(limit int) ([]Scan, error) {
	rows, err := r.db.Query(`
		SELECT scan_id, created_at, bgrs_json, facecube, success, duration_ms
		FROM scans
		ORDER BY created_at DESC, scan_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		s, err := scanScan(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *s)
	}

	return scans, nil
}

// Stats returns the total and successful scan counts.
func (r *ScanRepository) Stats() (Stats, error) {
	var st Stats
	err := r.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(success), 0) FROM scans
	`).Scan(&st.Total, &st.Succeeded)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get scan stats: %w", err)
	}
	return st, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanScan(row rowScanner) (*Scan, error) {
	var s Scan
	var bgrsJSON string
	var success int
	err := row.Scan(&s.ScanID, &s.CreatedAt, &bgrsJSON, &s.Facecube, &success, &s.DurationMs)
	if err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}
	if err := json.Unmarshal([]byte(bgrsJSON), &s.BGRs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal samples: %w", err)
	}
	s.Success = success != 0
	return &s, nil
}
