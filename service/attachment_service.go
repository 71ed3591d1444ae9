package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"batas-backend/logging"
	"batas-backend/models"
	"batas-backend/repository"
	"batas-backend/storage"

	"github.com/google/uuid"
)

var (
	ErrAttachmentRejected    = errors.New("attachment rejected")
	ErrAttachmentNotFound    = errors.New("attachment not found")
	ErrAttachmentsNotEnabled = errors.New("attachment storage not enabled")
)

// DefaultMaxAttachmentBytes is the per-file upload limit
const DefaultMaxAttachmentBytes int64 = 10 * 1024 * 1024

// AllowedAttachmentExtensions lists the accepted upload types
var AllowedAttachmentExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

// AttachmentRecorder persists attachment metadata
type AttachmentRecorder interface {
	Create(ctx context.Context, a *models.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AttachmentService stores files submitted alongside a description.
// The analysis never reads them.
type AttachmentService struct {
	storage  storage.Storage
	recorder AttachmentRecorder
	maxSize  int64
	logger   *slog.Logger
}

// AttachmentServiceOption is a functional option for AttachmentService
type AttachmentServiceOption func(*AttachmentService)

// AttachmentWithStorage sets the storage backend; nil drops attachments
func AttachmentWithStorage(s storage.Storage) AttachmentServiceOption {
	return func(a *AttachmentService) {
		a.storage = s
	}
}

// AttachmentWithRecorder sets where attachment metadata is recorded
func AttachmentWithRecorder(r AttachmentRecorder) AttachmentServiceOption {
	return func(a *AttachmentService) {
		a.recorder = r
	}
}

// AttachmentWithMaxSize sets the per-file size limit in bytes
func AttachmentWithMaxSize(n int64) AttachmentServiceOption {
	return func(a *AttachmentService) {
		if n > 0 {
			a.maxSize = n
		}
	}
}

// AttachmentWithLogger sets the logger
func AttachmentWithLogger(logger *slog.Logger) AttachmentServiceOption {
	return func(a *AttachmentService) {
		a.logger = logger
	}
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(opts ...AttachmentServiceOption) *AttachmentService {
	s := &AttachmentService{maxSize: DefaultMaxAttachmentBytes}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// MaxSize returns the per-file size limit
func (s *AttachmentService) MaxSize() int64 {
	return s.maxSize
}

// Validate checks the file name and size before anything is read
func (s *AttachmentService) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, a := range AllowedAttachmentExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s: file type not allowed, allowed types: %s",
			ErrAttachmentRejected, filename, strings.Join(AllowedAttachmentExtensions, ", "))
	}
	if size > s.maxSize {
		return fmt.Errorf("%w: %s: size exceeds maximum of %d bytes", ErrAttachmentRejected, filename, s.maxSize)
	}
	return nil
}

// StoreAttachmentRequest represents one uploaded file
type StoreAttachmentRequest struct {
	Filename string
	Size     int64
	Data     io.Reader
}

// Store validates and keeps one attachment. Without a storage backend the
// file is only described, not kept.
func (s *AttachmentService) Store(ctx context.Context, req StoreAttachmentRequest) (*models.Attachment, error) {
	if err := s.Validate(req.Filename, req.Size); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx, s.logger)

	attachment := &models.Attachment{
		ID:       uuid.New(),
		Filename: filepath.Base(req.Filename),
		MimeType: storage.ContentType(req.Filename),
		Size:     req.Size,
	}

	if s.storage == nil {
		logger.Debug("attachment storage disabled, dropping upload", "filename", attachment.Filename, "size", req.Size)
		return attachment, nil
	}

	path, err := s.storage.Upload(ctx, attachment.ID, attachment.Filename, io.LimitReader(req.Data, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}
	attachment.StoragePath = path

	if s.recorder != nil {
		if err := s.recorder.Create(ctx, attachment); err != nil {
			if delErr := s.storage.Delete(ctx, path); delErr != nil {
				logger.Warn("failed to clean up attachment after record failure", "path", path, "error", delErr)
			}
			return nil, fmt.Errorf("failed to record attachment: %w", err)
		}
	}

	logger.Info("attachment stored", "attachment_id", attachment.ID, "filename", attachment.Filename, "size", attachment.Size)
	return attachment, nil
}

// Discard removes attachments stored by Store whose request did not
// complete. Failures are logged; the remaining attachments are still removed.
func (s *AttachmentService) Discard(ctx context.Context, attachments []models.Attachment) {
	if s.storage == nil || len(attachments) == 0 {
		return
	}
	// the request context may already be cancelled
	ctx = context.WithoutCancel(ctx)
	logger := logging.FromContext(ctx, s.logger)

	for _, a := range attachments {
		if a.StoragePath == "" {
			continue
		}
		if s.recorder != nil {
			if err := s.recorder.Delete(ctx, a.ID); err != nil {
				logger.Warn("failed to delete attachment record", "attachment_id", a.ID, "error", err)
			}
		}
		if err := s.storage.Delete(ctx, a.StoragePath); err != nil {
			logger.Warn("failed to delete attachment content", "attachment_id", a.ID, "path", a.StoragePath, "error", err)
			continue
		}
		logger.Info("attachment discarded", "attachment_id", a.ID, "filename", a.Filename)
	}
}

// Open returns the metadata and content of a stored attachment.
// The caller closes the reader.
func (s *AttachmentService) Open(ctx context.Context, id uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	if s.storage == nil || s.recorder == nil {
		return nil, nil, ErrAttachmentsNotEnabled
	}

	attachment, err := s.recorder.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load attachment: %w", err)
	}

	rc, err := s.storage.Download(ctx, attachment.StoragePath)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return attachment, rc, nil
}
