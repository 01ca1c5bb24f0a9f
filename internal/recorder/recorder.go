// Package recorder persists an audit trail of accepted uploads. Analytics
// state itself is never persisted; the audit log only records that a batch
// was ingested, by whom and how large.
package recorder

import "time"

// UploadEvent describes one accepted batch upload.
type UploadEvent struct {
	Symbol     string    // Lowercased symbol the batch was ingested for
	Filename   string    // Original uploaded filename
	Rows       int       // Number of price points ingested
	ReceivedAt time.Time // When the upload was accepted
}

// Recorder persists upload audit entries.
//
// Implementations must be safe for concurrent use; uploads may arrive from
// multiple requests at once.
type Recorder interface {
	RecordUpload(e UploadEvent) error
	Ping() error
	Close() error
}
