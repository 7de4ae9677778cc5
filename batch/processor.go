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


package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/FrankX3M/check-positions/search"
)

// MaxQueries caps the number of queries accepted in a single batch.
const MaxQueries = 10000

// DefaultQueryDelay paces lookups against the external search API.
const DefaultQueryDelay = 100 * time.Millisecond

// progressInterval controls how often the progress sink is updated:
// on every query whose 1-based index is a multiple of this value.
const progressInterval = 10

// Processor drives a batch of queries through a search.RowSource.
// A Processor is stateless across runs and safe for concurrent use;
// each run owns its own report buffer and header flag.
type Processor struct {
	source  search.RowSource
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithQueryDelay sets the pacing interval between lookups.
// A non-positive delay disables pacing. Default is DefaultQueryDelay.
func WithQueryDelay(delay time.Duration) Option {
	return func(p *Processor) error {
		if delay <= 0 {
			p.limiter = nil
			return nil
		}
		p.limiter = rate.NewLimiter(rate.Every(delay), 1)
		return nil
	}
}

// NewProcessor creates a new batch processor.
func NewProcessor(source search.RowSource, opts ...Option) (*Processor, error) {
	if source == nil {
		return nil, ErrRowSourceRequired
	}

	p := &Processor{
		source:  source,
		limiter: rate.NewLimiter(rate.Every(DefaultQueryDelay), 1),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Outcome aggregates the result of one batch run.
type Outcome struct {
	Processed int    // queries that produced a row
	Total     int    // queries submitted
	Payload   []byte // UTF-8 with BOM encoded CSV
}

// Process runs the batch: one lookup per query, in input order, with pacing
// after every attempt. The CSV header is fixed by the first successful
// lookup. A failed lookup is logged and the loop continues; there is no
// retry and no abort. Cancellation is checked at the top of each iteration.
//
// Returns ErrTooManyQueries before any lookup when the batch exceeds
// MaxQueries, and ErrNothingProcessed when no query succeeded.
func (p *Processor) Process(ctx context.Context, queries []string, sink ProgressSink) (*Outcome, error) {
	if len(queries) > MaxQueries {
		return nil, fmt.Errorf("%w: limit %d, got %d", ErrTooManyQueries, MaxQueries, len(queries))
	}

	builder := newReportBuilder()
	total := len(queries)
	processed := 0

	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}

		row, err := p.source.Lookup(ctx, query)
		if err != nil {
			// A failed lookup isolates this query only.
			p.logger.Error("lookup failed", "index", i+1, "query", query, "err", err)
			if err := p.pace(ctx); err != nil {
				return nil, err
			}
			continue
		}

		if !builder.headerWritten() {
			if err := builder.writeHeader(row.Columns()); err != nil {
				return nil, err
			}
		}
		if err := builder.writeRow(row); err != nil {
			return nil, err
		}
		processed++

		p.logger.Info("query processed", "index", i+1, "total", total, "query", query)

		if sink != nil && (i+1)%progressInterval == 0 {
			p.report(sink, i+1, total)
		}

		if err := p.pace(ctx); err != nil {
			return nil, err
		}
	}

	if processed == 0 {
		return nil, ErrNothingProcessed
	}

	payload, err := builder.finalize()
	if err != nil {
		return nil, err
	}

	return &Outcome{Processed: processed, Total: total, Payload: payload}, nil
}

// report sends a status update. An unchanged-message rejection is expected
// when counts repeat and is swallowed; anything else is only worth a warning.
func (p *Processor) report(sink ProgressSink, index, total int) {
	err := sink.Update(fmt.Sprintf("Processed %d/%d queries...", index, total))
	switch {
	case err == nil, errors.Is(err, ErrUnchangedMessage):
	default:
		p.logger.Warn("progress update failed", "err", err)
	}
}

// pace waits for the rate limiter. It only fails on context cancellation.
func (p *Processor) pace(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
