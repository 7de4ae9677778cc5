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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/FrankX3M/check-positions/archive"
	"github.com/FrankX3M/check-positions/batch"
	"github.com/FrankX3M/check-positions/decode"
	"github.com/FrankX3M/check-positions/search"
	"github.com/FrankX3M/check-positions/telegram"
)

func main() {
	// A missing .env is fine; credentials may come from flags or the environment.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "checkpositions",
		Usage: "Collect site positions in search results for batches of queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "bot",
				Usage:  "Run the Telegram bot",
				Action: botCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Usage:    "Telegram bot token",
						EnvVars:  []string{"TOKENBOT"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "xmlriver-user",
						Usage:    "XMLRiver account ID",
						EnvVars:  []string{"XMLRIVER_USER"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "xmlriver-key",
						Usage:    "XMLRiver API key",
						EnvVars:  []string{"XMLRIVER_KEY"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "domain",
						Usage:    "Domain whose positions are reported",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the report archive directory (omit to disable history)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of batches processed concurrently",
						Value: 4,
					},
					&cli.DurationFlag{
						Name:  "query-delay",
						Usage: "Pause between lookups",
						Value: batch.DefaultQueryDelay,
					},
				},
			},
			{
				Name:   "process",
				Usage:  "Process a local query file into a CSV report",
				Action: processCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the query file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Path for the CSV report",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "xmlriver-user",
						Usage:    "XMLRiver account ID",
						EnvVars:  []string{"XMLRIVER_USER"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "xmlriver-key",
						Usage:    "XMLRiver API key",
						EnvVars:  []string{"XMLRIVER_KEY"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "domain",
						Usage:    "Domain whose positions are reported",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "query-delay",
						Usage: "Pause between lookups",
						Value: batch.DefaultQueryDelay,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newProcessor(c *cli.Context) (*batch.Processor, error) {
	client, err := search.NewClient(search.Config{
		User:   c.String("xmlriver-user"),
		Key:    c.String("xmlriver-key"),
		Domain: c.String("domain"),
	})
	if err != nil {
		return nil, err
	}
	return batch.NewProcessor(client, batch.WithQueryDelay(c.Duration("query-delay")))
}

func botCommand(c *cli.Context) error {
	processor, err := newProcessor(c)
	if err != nil {
		return err
	}

	opts := []telegram.Option{telegram.WithPoolSize(c.Int("pool-size"))}
	if dbPath := c.String("db"); dbPath != "" {
		reports, err := archive.Open(dbPath, false)
		if err != nil {
			return fmt.Errorf("failed to open report archive: %w", err)
		}
		defer reports.Close()
		opts = append(opts, telegram.WithArchive(reports))
	}

	bot, err := telegram.NewBot(c.String("token"), processor, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bot.Run(ctx)
}

func processCommand(c *cli.Context) error {
	data, err := os.ReadFile(c.String("input"))
	if err != nil {
		return err
	}

	text, err := decode.Decode(data, int64(len(data)), "text/plain")
	if err != nil {
		return err
	}

	queries := batch.ExtractQueries(text)
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", c.String("input"))
	}

	processor, err := newProcessor(c)
	if err != nil {
		return err
	}

	outcome, err := processor.Process(c.Context, queries, batch.NewWriterSink(os.Stderr))
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.String("output"), outcome.Payload, 0644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Processed %d/%d queries, report written to %s\n",
		outcome.Processed, outcome.Total, c.String("output"))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
