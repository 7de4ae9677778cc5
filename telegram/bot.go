// Copyright 2025 FrankX3M
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/panjf2000/ants/v2"

	"github.com/FrankX3M/check-positions/archive"
	"github.com/FrankX3M/check-positions/batch"
)

const defaultPoolSize = 4

// Bot polls Telegram for messages and runs query batches against the pipeline.
type Bot struct {
	api        *tgbotapi.BotAPI
	processor  *batch.Processor
	reports    *archive.Archive // optional; nil disables history
	pool       *ants.Pool
	httpClient *http.Client // downloads user files
	logger     *slog.Logger
}

// Option configures a Bot.
type Option func(*Bot) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent batch runs.
// Default is 4, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Bot) error {
		if size < 1 {
			size = 1
		}

		if b.pool != nil {
			b.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithArchive enables report history backed by the given archive.
// The bot does not own the archive; the caller closes it.
func WithArchive(reports *archive.Archive) Option {
	return func(b *Bot) error {
		b.reports = reports
		return nil
	}
}

// WithHTTPClient sets the client used to download uploaded files.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(b *Bot) error {
		if httpClient != nil {
			b.httpClient = httpClient
		}
		return nil
	}
}

// NewBot authorizes against the Bot API and creates the adapter.
func NewBot(token string, processor *batch.Processor, opts ...Option) (*Bot, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}
	if processor == nil {
		return nil, ErrProcessorRequired
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram authorization failed: %w", err)
	}

	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		api:        api,
		processor:  processor,
		pool:       pool,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.pool.Release()
			return nil, optErr
		}
	}

	return b, nil
}

// Run polls for updates until ctx is cancelled, then releases the pool.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	cfg.AllowedUpdates = []string{"message"}

	updates := b.api.GetUpdatesChan(cfg)
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.pool.Release()
			b.logger.Info("bot stopped")
			return nil
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.dispatch(ctx, update.Message)
		}
	}
}

// reply sends text as a reply to msg. Send failures are logged only.
func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	m := tgbotapi.NewMessage(msg.Chat.ID, text)
	m.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(m); err != nil {
		b.logger.Error("failed to send reply", "chatID", msg.Chat.ID, "err", err)
	}
}
