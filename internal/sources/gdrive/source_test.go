package gdrive

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

func TestListQuery_NoFolder(t *testing.T) {
	q := listQuery("")

	assert.Contains(t, q, mimeDocx)
	assert.Contains(t, q, mimeDoc)
	assert.Contains(t, q, mimePDF)
	assert.Contains(t, q, "trashed = false")
	assert.NotContains(t, q, "in parents")
}

func TestListQuery_WithFolder(t *testing.T) {
	q := listQuery("folder-123")

	assert.Contains(t, q, "'folder-123' in parents")
}

func TestFileToRef(t *testing.T) {
	file := &drive.File{
		Id:           "file-1",
		Name:         "пир_иванов.docx",
		ModifiedTime: "2026-01-15T10:00:00Z",
		Size:         2048,
	}

	ref := fileToRef(file)

	assert.Equal(t, "file-1", ref.ID)
	assert.Equal(t, "пир_иванов.docx", ref.Name)
	assert.Equal(t, domain.SourceDrive, ref.Kind)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), ref.ModifiedAt)
	assert.Equal(t, int64(2048), ref.Size)
}

func TestFileToRef_BadModifiedTime(t *testing.T) {
	ref := fileToRef(&drive.File{Id: "f", Name: "a.pdf", ModifiedTime: "garbage"})

	assert.True(t, ref.ModifiedAt.IsZero())
}

func TestWrapListError(t *testing.T) {
	err := wrapListError(&googleapi.Error{Code: http.StatusUnauthorized})

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "unauthorised")
}

func TestWrapListError_Nil(t *testing.T) {
	assert.NoError(t, wrapListError(nil))
}

func TestWrapFetchError(t *testing.T) {
	err := wrapFetchError("пир_иванов.docx", &googleapi.Error{Code: http.StatusNotFound})

	assert.ErrorIs(t, err, domain.ErrDocumentUnavailable)
	assert.Contains(t, err.Error(), "пир_иванов.docx")
	assert.Contains(t, err.Error(), "not found")
}

func TestReadDocument_WithinLimit(t *testing.T) {
	content := []byte("план развития")

	data, err := readDocument(bytes.NewReader(content), "пир_иванов.docx")

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestReadDocument_RejectsOversized(t *testing.T) {
	oversized := bytes.NewReader(make([]byte, maxFileSize+1))

	_, err := readDocument(oversized, "huge.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentUnavailable)
	assert.Contains(t, err.Error(), "huge.pdf")
	assert.Contains(t, err.Error(), "size limit")
}

func TestReadDocument_ExactLimit(t *testing.T) {
	exact := bytes.NewReader(make([]byte, maxFileSize))

	data, err := readDocument(exact, "big.docx")

	require.NoError(t, err)
	assert.Len(t, data, maxFileSize)
}

func TestReadDocument_ReadError(t *testing.T) {
	_, err := readDocument(failingReader{}, "flaky.docx")

	assert.ErrorIs(t, err, domain.ErrDocumentUnavailable)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestTokenFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")

	token := map[string]any{
		"access_token": "ya29.test",
		"token_type":   "Bearer",
	}
	data, err := json.Marshal(token)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	ts, err := TokenFromFile(path)
	require.NoError(t, err)

	got, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "ya29.test", got.AccessToken)
}

func TestTokenFromFile_Missing(t *testing.T) {
	_, err := TokenFromFile(filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestTokenFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0600))
	_, err := TokenFromFile(bad)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("{}"), 0600))
	_, err = TokenFromFile(empty)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
