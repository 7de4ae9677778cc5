package batch

import (
	"fmt"
	"io"
)

// ProgressSink receives human-readable status updates during a batch run.
// Each update supersedes the previous one; transports with editable messages
// should edit in place rather than append. Implementations return
// ErrUnchangedMessage when the new text matches the currently displayed one.
//
// The processor holds a non-owning reference: sink failures never abort the
// batch.
type ProgressSink interface {
	Update(text string) error
}

// WriterSink reports progress to an io.Writer, one line per update.
// Identical consecutive updates are rejected with ErrUnchangedMessage.
type WriterSink struct {
	w    io.Writer
	last string
}

var _ ProgressSink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing to w (typically os.Stderr).
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Update writes the status text as a line.
func (s *WriterSink) Update(text string) error {
	if text == s.last {
		return ErrUnchangedMessage
	}
	s.last = text
	_, err := fmt.Fprintln(s.w, text)
	return err
}
