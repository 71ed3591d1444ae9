package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"batas-backend/models"
	"batas-backend/repository"
	"batas-backend/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRecorder struct {
	records   map[uuid.UUID]*models.Attachment
	createErr error
	deleteErr error
}

func newMemoryRecorder() *memoryRecorder {
	return &memoryRecorder{records: make(map[uuid.UUID]*models.Attachment)}
}

func (r *memoryRecorder) Create(ctx context.Context, a *models.Attachment) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *a
	r.records[a.ID] = &copied
	return nil
}

func (r *memoryRecorder) GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (r *memoryRecorder) Delete(ctx context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.records, id)
	return nil
}

func storedFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	require.NoError(t, filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, path)
		}
		return err
	}))
	return files
}

func TestAttachmentService_Validate(t *testing.T) {
	svc := NewAttachmentService(AttachmentWithMaxSize(1024))

	tests := []struct {
		filename string
		size     int64
		wantErr  bool
	}{
		{"titulo.pdf", 100, false},
		{"Kontrata.DOCX", 1024, false},
		{"larawan.jpeg", 1, false},
		{"scan.png", 0, false},
		{"titulo.pdf", 1025, true},
		{"virus.exe", 10, true},
		{"archive.zip", 10, true},
		{"no-extension", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			err := svc.Validate(tt.filename, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAttachmentRejected)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAttachmentService_DefaultMaxSize(t *testing.T) {
	assert.Equal(t, DefaultMaxAttachmentBytes, NewAttachmentService().MaxSize())
	assert.Equal(t, DefaultMaxAttachmentBytes, NewAttachmentService(AttachmentWithMaxSize(0)).MaxSize())
}

func TestAttachmentService_StoreWithoutStorage(t *testing.T) {
	svc := NewAttachmentService(AttachmentWithLogger(discardLogger()))

	a, err := svc.Store(context.Background(), StoreAttachmentRequest{
		Filename: "uploads/titulo.pdf",
		Size:     4,
		Data:     strings.NewReader("%PDF"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "titulo.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.MimeType)
	assert.Empty(t, a.StoragePath)

	_, _, err = svc.Open(context.Background(), a.ID)
	assert.ErrorIs(t, err, ErrAttachmentsNotEnabled)
}

func TestAttachmentService_StoreAndOpen(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	recorder := newMemoryRecorder()
	svc := NewAttachmentService(
		AttachmentWithStorage(local),
		AttachmentWithRecorder(recorder),
		AttachmentWithLogger(discardLogger()),
	)
	ctx := context.Background()

	a, err := svc.Store(ctx, StoreAttachmentRequest{
		Filename: "larawan.jpg",
		Size:     5,
		Data:     strings.NewReader("image"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.StoragePath)
	assert.Contains(t, recorder.records, a.ID)

	meta, rc, err := svc.Open(ctx, a.ID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "image", string(data))
	assert.Equal(t, "image/jpeg", meta.MimeType)

	_, _, err = svc.Open(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestAttachmentService_OpenMissingContent(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	recorder := newMemoryRecorder()
	svc := NewAttachmentService(AttachmentWithStorage(local), AttachmentWithRecorder(recorder))

	id := uuid.New()
	recorder.records[id] = &models.Attachment{ID: id, Filename: "gone.pdf", StoragePath: "attachments/ab/gone.pdf"}

	_, _, err = svc.Open(context.Background(), id)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestAttachmentService_RecordFailureRemovesUpload(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	recorder := newMemoryRecorder()
	recorder.createErr = errors.New("insert failed")
	svc := NewAttachmentService(
		AttachmentWithStorage(local),
		AttachmentWithRecorder(recorder),
		AttachmentWithLogger(discardLogger()),
	)

	_, err = svc.Store(context.Background(), StoreAttachmentRequest{
		Filename: "titulo.pdf",
		Size:     4,
		Data:     strings.NewReader("%PDF"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
	assert.Empty(t, storedFiles(t, dir))
}

func TestAttachmentService_Discard(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	recorder := newMemoryRecorder()
	svc := NewAttachmentService(
		AttachmentWithStorage(local),
		AttachmentWithRecorder(recorder),
		AttachmentWithLogger(discardLogger()),
	)

	var stored []models.Attachment
	for _, name := range []string{"titulo.pdf", "kontrata.docx"} {
		a, err := svc.Store(context.Background(), StoreAttachmentRequest{
			Filename: name,
			Size:     4,
			Data:     strings.NewReader("data"),
		})
		require.NoError(t, err)
		stored = append(stored, *a)
	}
	require.Len(t, storedFiles(t, dir), 2)

	// cleanup still runs after the request is cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Discard(ctx, stored)

	assert.Empty(t, storedFiles(t, dir))
	assert.Empty(t, recorder.records)
	_, _, err = svc.Open(context.Background(), stored[0].ID)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestAttachmentService_DiscardRecordFailure(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	recorder := newMemoryRecorder()
	svc := NewAttachmentService(
		AttachmentWithStorage(local),
		AttachmentWithRecorder(recorder),
		AttachmentWithLogger(discardLogger()),
	)

	a, err := svc.Store(context.Background(), StoreAttachmentRequest{
		Filename: "titulo.pdf",
		Size:     4,
		Data:     strings.NewReader("%PDF"),
	})
	require.NoError(t, err)

	recorder.deleteErr = errors.New("delete failed")
	svc.Discard(context.Background(), []models.Attachment{*a})

	assert.Empty(t, storedFiles(t, dir), "content is removed even when the record is not")
}

func TestAttachmentService_DiscardWithoutStorage(t *testing.T) {
	svc := NewAttachmentService(AttachmentWithLogger(discardLogger()))
	assert.NotPanics(t, func() {
		svc.Discard(context.Background(), []models.Attachment{{ID: uuid.New(), Filename: "titulo.pdf"}})
	})
}

func TestAttachmentService_StoreRejectsBeforeUpload(t *testing.T) {
	recorder := newMemoryRecorder()
	svc := NewAttachmentService(AttachmentWithRecorder(recorder), AttachmentWithMaxSize(2))

	_, err := svc.Store(context.Background(), StoreAttachmentRequest{
		Filename: "titulo.pdf",
		Size:     3,
		Data:     strings.NewReader("abc"),
	})
	assert.ErrorIs(t, err, ErrAttachmentRejected)
	assert.Empty(t, recorder.records)
}
