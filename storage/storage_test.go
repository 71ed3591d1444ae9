package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage_None(t *testing.T) {
	s, err := NewStorage(StorageConfig{Type: StorageTypeNone})
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = NewStorage(StorageConfig{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestNewStorage_Errors(t *testing.T) {
	_, err := NewStorage(StorageConfig{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(StorageConfig{Type: StorageTypeS3})
	assert.Error(t, err, "bucket is required")
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"deed.pdf":     "application/pdf",
		"Deed.PDF":     "application/pdf",
		"letter.doc":   "application/msword",
		"letter.docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"photo.jpg":    "image/jpeg",
		"photo.jpeg":   "image/jpeg",
		"scan.png":     "image/png",
		"archive.zip":  "application/octet-stream",
		"no-extension": "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}

func TestAttachmentKey(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	key := attachmentKey(id, "../Titulo ng Lupa.PDF")
	assert.Equal(t, "attachments/0f/0f8fad5b-d9cb-469f-a165-70867728950e_Titulo_ng_Lupa.pdf", key)
	assert.NotContains(t, key, "..")
}

func TestAttachmentKey_TruncatesByRune(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	// the 64th rune is two bytes wide
	name := strings.Repeat("a", 63) + strings.Repeat("ñ", 5) + ".pdf"
	key := attachmentKey(id, name)

	assert.True(t, utf8.ValidString(key), key)
	assert.Equal(t, "attachments/0f/0f8fad5b-d9cb-469f-a165-70867728950e_"+strings.Repeat("a", 63)+"ñ.pdf", key)
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	path, err := s.Upload(ctx, uuid.New(), "kontrata.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "attachments/"))

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.True(t, bytes.Equal([]byte("%PDF-1.4"), data))

	require.NoError(t, s.Delete(ctx, path))
	require.NoError(t, s.Delete(ctx, path), "deleting twice is not an error")

	_, err = s.Download(ctx, path)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Download(context.Background(), "../../etc/passwd")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
