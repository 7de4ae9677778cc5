package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/FrankX3M/check-positions/batch"
)

func processCommandForTest() *cli.Command {
	return &cli.Command{
		Name:   "process",
		Action: processCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "xmlriver-user",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "xmlriver-key",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "domain",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "query-delay",
				Value: batch.DefaultQueryDelay,
			},
		},
	}
}

func TestProcessCommandFlags(t *testing.T) {
	app := &cli.App{
		Name:     "checkpositions",
		Commands: []*cli.Command{processCommandForTest()},
	}

	t.Run("missing input flag fails", func(t *testing.T) {
		args := []string{"checkpositions", "process",
			"--output", "/tmp/out.csv",
			"--xmlriver-user", "1", "--xmlriver-key", "k", "--domain", "example.com"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input")
	})

	t.Run("missing domain flag fails", func(t *testing.T) {
		args := []string{"checkpositions", "process",
			"--input", "/tmp/queries.txt", "--output", "/tmp/out.csv",
			"--xmlriver-user", "1", "--xmlriver-key", "k"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "domain")
	})

	t.Run("query-delay has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var delayFlag *cli.DurationFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.DurationFlag); ok && f.Name == "query-delay" {
				delayFlag = f
				break
			}
		}
		require.NotNil(t, delayFlag)
		assert.Equal(t, batch.DefaultQueryDelay, delayFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, err.Error(), "verbose")
	})

	t.Run("default log level is info", func(t *testing.T) {
		app := newApp()
		app.Action = func(c *cli.Context) error {
			assert.Equal(t, "info", c.String("log-level"))
			return nil
		}
		require.NoError(t, app.Run([]string{"test"}))
	})
}
