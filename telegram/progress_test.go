package telegram

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrankX3M/check-positions/batch"
)

// fakeEditor records edits and returns a canned error.
type fakeEditor struct {
	err  error
	sent []tgbotapi.Chattable
}

func (f *fakeEditor) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestMessageSinkUpdate(t *testing.T) {
	t.Run("successful edit", func(t *testing.T) {
		editor := &fakeEditor{}
		sink := newMessageSink(editor, 42, 7)

		require.NoError(t, sink.Update("Processed 10/25 queries..."))
		require.Len(t, editor.sent, 1)

		edit, ok := editor.sent[0].(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Equal(t, int64(42), edit.ChatID)
		assert.Equal(t, 7, edit.MessageID)
		assert.Equal(t, "Processed 10/25 queries...", edit.Text)
	})

	t.Run("unmodified rejection maps to the sentinel", func(t *testing.T) {
		editor := &fakeEditor{err: &tgbotapi.Error{Message: "Bad Request: message is not modified"}}
		sink := newMessageSink(editor, 42, 7)

		err := sink.Update("Processed 10/25 queries...")
		assert.ErrorIs(t, err, batch.ErrUnchangedMessage)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		transportErr := errors.New("connection reset")
		editor := &fakeEditor{err: transportErr}
		sink := newMessageSink(editor, 42, 7)

		err := sink.Update("Processed 10/25 queries...")
		assert.ErrorIs(t, err, transportErr)
	})
}
