package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrankX3M/check-positions/batch"
	"github.com/FrankX3M/check-positions/core"
	"github.com/FrankX3M/check-positions/decode"
)

const startText = `Hi! I collect site positions in search results.

Send me:
- a text message with queries, one per line
- a .txt file with queries

Lines starting with # are ignored. You will get a CSV file with the results.`

// dispatch routes one incoming message. Batch work runs on the worker pool
// so a slow batch from one chat does not block polling for others.
func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case msg.Text != "" || msg.Document != nil:
		if err := b.pool.Submit(func() { b.runBatch(ctx, msg) }); err != nil {
			b.logger.Error("failed to submit batch", "chatID", msg.Chat.ID, "err", err)
			b.reply(msg, "The bot is overloaded right now, please try again later.")
		}
	default:
		b.reply(msg, "I don't understand this message. Send /start for instructions.")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg, startText)
	case "recent":
		b.sendRecent(ctx, msg)
	default:
		b.reply(msg, "Unknown command. Send /start for instructions.")
	}
}

// runBatch executes the whole pipeline for one message. A panic here is a
// defect in the scaffolding, not a per-query failure; it is recovered and
// reported generically so the bot keeps serving other chats.
func (b *Bot) runBatch(ctx context.Context, msg *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("batch aborted", "chatID", msg.Chat.ID, "panic", r)
			b.reply(msg, "An unexpected error occurred and the batch was aborted.")
		}
	}()

	queries, err := b.collectQueries(ctx, msg)
	if err != nil {
		b.logger.Error("failed to read input", "chatID", msg.Chat.ID, "err", err)
		b.reply(msg, inputErrorText(err))
		return
	}
	if len(queries) == 0 {
		b.reply(msg, "No queries found.\n\nSend queries one per line, as text or as a .txt file.")
		return
	}

	status, statusErr := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("Processing %d queries...", len(queries))))
	var sink batch.ProgressSink
	if statusErr == nil {
		sink = newMessageSink(b.api, status.Chat.ID, status.MessageID)
		defer func() {
			// Best effort: the status message is stale once the outcome is known.
			if _, err := b.api.Request(tgbotapi.NewDeleteMessage(status.Chat.ID, status.MessageID)); err != nil {
				b.logger.Debug("failed to delete status message", "err", err)
			}
		}()
	} else {
		b.logger.Warn("failed to post status message", "chatID", msg.Chat.ID, "err", statusErr)
	}

	outcome, err := b.processor.Process(ctx, queries, sink)
	switch {
	case errors.Is(err, batch.ErrTooManyQueries):
		b.reply(msg, fmt.Sprintf("Too many queries! The limit is %d, got %d.", batch.MaxQueries, len(queries)))
		return
	case errors.Is(err, batch.ErrNothingProcessed):
		b.reply(msg, "None of the queries could be processed.")
		return
	case err != nil:
		b.logger.Error("batch failed", "chatID", msg.Chat.ID, "err", err)
		b.reply(msg, "An error occurred while processing the batch.")
		return
	}

	name := batch.ReportFilename(outcome.Processed)
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: name, Bytes: outcome.Payload})
	doc.Caption = fmt.Sprintf("Done! Processed %d/%d queries.", outcome.Processed, outcome.Total)
	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("failed to send report", "chatID", msg.Chat.ID, "err", err)
		b.reply(msg, "Failed to send the report file. Try splitting the queries into smaller batches.")
		return
	}

	b.store(ctx, name, outcome)
}

// collectQueries extracts queries from the message text or an attached document.
func (b *Bot) collectQueries(ctx context.Context, msg *tgbotapi.Message) ([]string, error) {
	if msg.Document != nil {
		text, err := b.downloadDocument(ctx, msg.Document)
		if err != nil {
			return nil, err
		}
		return batch.ExtractQueries(text), nil
	}
	return batch.ExtractQueries(msg.Text), nil
}

// store archives the finished report when history is enabled.
func (b *Bot) store(ctx context.Context, name string, outcome *batch.Outcome) {
	if b.reports == nil {
		return
	}
	report := &core.Report{
		Name:      name,
		Processed: outcome.Processed,
		Total:     outcome.Total,
		Payload:   outcome.Payload,
	}
	if _, err := b.reports.SaveReport(ctx, report); err != nil {
		b.logger.Error("failed to archive report", "err", err)
	}
}

// sendRecent re-sends the most recently stored report.
func (b *Bot) sendRecent(ctx context.Context, msg *tgbotapi.Message) {
	if b.reports == nil {
		b.reply(msg, "Report history is not enabled.")
		return
	}

	reports, err := b.reports.RecentReports(ctx, 1)
	if err != nil {
		b.logger.Error("failed to list recent reports", "err", err)
		b.reply(msg, "Failed to look up recent reports.")
		return
	}
	if len(reports) == 0 {
		b.reply(msg, "No reports stored yet.")
		return
	}

	r := reports[0]
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: r.Name, Bytes: r.Payload})
	doc.Caption = fmt.Sprintf("Most recent report: %d/%d queries processed.", r.Processed, r.Total)
	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("failed to send recent report", "err", err)
		b.reply(msg, "Failed to send the report file.")
	}
}

// inputErrorText maps input-acquisition failures to user-facing messages.
func inputErrorText(err error) string {
	switch {
	case errors.Is(err, decode.ErrFileTooLarge):
		return fmt.Sprintf("The file is too large! The limit is %d MB.", decode.MaxFileSize/(1<<20))
	case errors.Is(err, decode.ErrUnsupportedType):
		return "Please send a plain text file (.txt)."
	case errors.Is(err, decode.ErrUndecodableContent):
		return "Could not read the file. Check its encoding."
	}
	return "Failed to read the file."
}
