package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFingerprint_Deterministic(t *testing.T) {
	content := []byte("встреча состоялась 12 марта")

	fp1 := NewFingerprint(content)
	fp2 := NewFingerprint(content)

	assert.Equal(t, fp1, fp2)
}

func TestNewFingerprint_DistinctContent(t *testing.T) {
	fp1 := NewFingerprint([]byte("plan A"))
	fp2 := NewFingerprint([]byte("plan B"))

	assert.NotEqual(t, fp1, fp2)
}

func TestNewFingerprint_FixedLength(t *testing.T) {
	// SHA-256 hex is always 64 characters
	assert.Len(t, string(NewFingerprint([]byte("x"))), 64)
	assert.Len(t, string(NewFingerprint(make([]byte, 1<<20))), 64)
}

func TestNewFingerprint_TotalOverEmpty(t *testing.T) {
	empty := NewFingerprint([]byte{})
	var nilBytes []byte

	assert.Equal(t, empty, NewFingerprint(nilBytes))
	assert.Len(t, string(empty), 64)
}

func TestNewFingerprint_IndependentOfName(t *testing.T) {
	// Identity comparison is content-only: same bytes under different
	// refs produce the same fingerprint.
	content := []byte("one on one notes")

	assert.Equal(t, NewFingerprint(content), NewFingerprint(content))
}

func TestFingerprint_Short(t *testing.T) {
	fp := NewFingerprint([]byte("abc"))

	assert.Len(t, fp.Short(), 8)
	assert.Equal(t, string(fp)[:8], fp.Short())
}

func TestFingerprint_ShortOnShortValue(t *testing.T) {
	assert.Equal(t, "ab", Fingerprint("ab").Short())
}
