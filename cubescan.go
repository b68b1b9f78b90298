// Package cubescan matches raw per-facelet color samples against the
// combinatorial structure of a 3x3 Rubik's cube.
//
// # Overview
//
// Naive nearest-color classification of the 54 facelets breaks down under
// reflections and uneven lighting. cubescan instead combines a learned
// per-pixel confidence table with full constraint propagation over the
// cube's corner and edge cubies, assigning facelets in order of confidence
// and backtracking when the tentative colors cannot appear on any real
// cube.
//
// # Quick Start
//
// Load the confidence table once and match as many scans as needed:
//
//	table, err := cubescan.LoadTable("scan.tbl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matcher := cubescan.NewMatcher(table)
//	facecube, err := matcher.Match(bgrs) // 54 BGR triples from the cameras
//	if errors.Is(err, cubescan.ErrScan) {
//	    // bad scan, ask for a retry
//	}
//
// The result is a 54-letter facelet string in face-major order U, R, F, D,
// L, B with each face enumerated row-major, e.g. a solved cube reads
// "UUUUUUUUURRRRRRRRR...BBBBBBBBB". ValidateFacecube checks any such
// string against the physical cube constraints.
//
// # Confidence table
//
// The table is a raw little-endian uint16[16777216][6] array (exactly
// 201326592 bytes, generally named scan.tbl): for every possible 24-bit
// BGR value, six per-color confidence scores learned offline from labeled
// scans. See the train command of cmd/cubescan for how it is produced.
//
// # Concurrency
//
// A Table is immutable after LoadTable and safe for concurrent readers. A
// Matcher keeps all mutable state on the stack of a Match call, so a
// single Matcher may be shared across goroutines.
package cubescan
