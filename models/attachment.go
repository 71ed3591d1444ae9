package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a file submitted alongside a description.
// The analysis pipeline never reads its contents.
type Attachment struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
