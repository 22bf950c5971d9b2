package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint is a hex-encoded SHA-256 digest of document content.
// Two documents with equal fingerprints are considered identical for
// reanalysis purposes, regardless of name or path changes.
type Fingerprint string

// NewFingerprint computes the fingerprint of raw document content.
// Total over any byte slice, including empty and nil.
func NewFingerprint(content []byte) Fingerprint {
	sum := sha256.Sum256(content)
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// Short returns a truncated form for log output.
func (f Fingerprint) Short() string {
	if len(f) <= 8 {
		return string(f)
	}
	return string(f[:8])
}
