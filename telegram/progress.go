package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrankX3M/check-positions/batch"
)

// messageEditor is the slice of the Bot API the sink needs.
// *tgbotapi.BotAPI satisfies it.
type messageEditor interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// messageSink reports batch progress by editing a status message in place.
type messageSink struct {
	editor    messageEditor
	chatID    int64
	messageID int
}

var _ batch.ProgressSink = (*messageSink)(nil)

func newMessageSink(editor messageEditor, chatID int64, messageID int) *messageSink {
	return &messageSink{editor: editor, chatID: chatID, messageID: messageID}
}

// Update edits the status message. The Bot API rejects edits that leave a
// message unchanged; exactly that rejection maps to ErrUnchangedMessage so
// the processor can swallow it. Everything else propagates.
func (s *messageSink) Update(text string) error {
	_, err := s.editor.Send(tgbotapi.NewEditMessageText(s.chatID, s.messageID, text))
	if err == nil {
		return nil
	}
	if isUnmodifiedError(err) {
		return batch.ErrUnchangedMessage
	}
	return err
}

// isUnmodifiedError matches the Bot API "message is not modified" rejection.
func isUnmodifiedError(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
