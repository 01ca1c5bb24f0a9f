package recorder

// Noop is a no-op Recorder used when no audit backend is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) RecordUpload(_ UploadEvent) error { return nil }
func (n *Noop) Ping() error                      { return nil }
func (n *Noop) Close() error                     { return nil }
