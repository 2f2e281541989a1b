package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func searchTestApp() *cli.App {
	return &cli.App{
		Name: "wattretrieve",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "engine",
						Aliases: []string{"e"},
						Value:   "vector",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Value:   5,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name: "embedding-model",
					},
					&cli.StringFlag{
						Name: "cache-dir",
					},
					&cli.BoolFlag{
						Name: "dedup",
					},
				},
			},
		},
	}
}

func TestSearchCommand(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(corpus, []byte(`[
        {"doc_id": 0, "content": "The cat sat on the mat."},
        {"doc_id": 1, "content": "The dog slept in the garden."}
    ]`), 0644))

	t.Run("corpus flag is required", func(t *testing.T) {
		err := searchTestApp().Run([]string{"wattretrieve", "search", "cat"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corpus")
	})

	t.Run("query argument is required", func(t *testing.T) {
		err := searchTestApp().Run([]string{"wattretrieve", "search", "--corpus", corpus})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("unknown engine fails", func(t *testing.T) {
		err := searchTestApp().Run([]string{
			"wattretrieve", "search", "--corpus", corpus, "--engine", "graph", "cat",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown engine")
	})

	t.Run("vector search with the built-in embedder", func(t *testing.T) {
		err := searchTestApp().Run([]string{
			"wattretrieve", "search", "--corpus", corpus, "--top-k", "1", "cat on the mat",
		})
		require.NoError(t, err)
	})

	t.Run("noun search", func(t *testing.T) {
		err := searchTestApp().Run([]string{
			"wattretrieve", "search", "--corpus", corpus, "--engine", "noun", "the garden",
		})
		require.NoError(t, err)
	})
}

func TestConvertCommand(t *testing.T) {
	app := &cli.App{
		Name: "wattretrieve",
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Action: convertCommand,
			},
		},
	}

	t.Run("requires input and output paths", func(t *testing.T) {
		err := app.Run([]string{"wattretrieve", "convert", "only-one.jsonl"})
		require.Error(t, err)
	})

	t.Run("converts JSONL to a loadable JSON array", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "corpus.jsonl")
		output := filepath.Join(dir, "corpus.json")
		require.NoError(t, os.WriteFile(input, []byte(
			`{"doc_id": 0, "content": "First passage."}`+"\n"+
				`{"doc_id": 1, "content": ["Split", "passage."]}`+"\n",
		), 0644))

		err := app.Run([]string{"wattretrieve", "convert", input, output})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Split passage.")
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
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		require.NoError(t, newApp().Run([]string{"test", "--log-level", "DEBUG"}))
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("debug level is enabled after setup", func(t *testing.T) {
		require.NoError(t, newApp().Run([]string{"test", "--log-level", "debug"}))
		assert.True(t, slog.Default().Enabled(nil, slog.LevelDebug))
	})
}
