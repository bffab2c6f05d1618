// Package checksum fingerprints fetched HTML documents.
//
// Two checksums are computed for every document:
//
//   - Raw checksum: SHA-256 of the exact bytes (detects any change)
//   - Normalized checksum: SHA-256 after removing <!-- --> comments,
//     lower-casing, collapsing whitespace runs to one space and dropping
//     whitespace between tags
//
// The snapshot store keys snapshots by URL and normalized checksum, so a page
// that is only re-indented or has a rotating cache-buster comment is stored
// once.
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(body)
//	normalized := calculator.CalculateNormalized(body)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
