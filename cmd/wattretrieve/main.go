// Copyright 2026 Wattbot Labs
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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/wattbot/retrieval"
	"github.com/wattbot/retrieval/docstore"
	"github.com/wattbot/retrieval/embed"
	"github.com/wattbot/retrieval/embed/openai"
	"github.com/wattbot/retrieval/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "wattretrieve",
		Usage: "Passage retrieval over JSON corpora with embedding and noun search",
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
				Name:      "search",
				Usage:     "Build indexes over a corpus and rank passages for a query",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Path to the JSON corpus file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "engine",
						Aliases: []string{"e"},
						Usage:   "Search engine to query (vector, noun)",
						Value:   "vector",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of passages to return",
						Value:   5,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (omit for the built-in TF-IDF embedder)",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Directory for the on-disk embedding cache",
					},
					&cli.BoolFlag{
						Name:  "dedup",
						Usage: "Drop passages with duplicate text while loading",
					},
				},
			},
			{
				Name:      "convert",
				Usage:     "Convert a JSONL corpus to the JSON array format",
				ArgsUsage: "INPUT.jsonl OUTPUT.json",
				Action:    convertCommand,
			},
			{
				Name:   "stats",
				Usage:  "Load a corpus, build both indexes, and report their sizes",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Path to the JSON corpus file",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "dedup",
						Usage: "Drop passages with duplicate text while loading",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openRetriever(ctx context.Context, c *cli.Context) (*retrieval.Retriever, error) {
	opts := []retrieval.Option{}
	if c.Bool("dedup") {
		opts = append(opts, retrieval.WithDeduplication())
	}

	model := c.String("embedding-model")
	if model != "" {
		config := embed.NewConfig(
			embed.WithHost(c.String("embedding-host")),
			embed.WithModel(model),
		)
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid embedding configuration: %w", err)
		}
		embedder, err := openai.NewEmbedder(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, retrieval.WithEmbedder(embedder, model))
	}

	if cacheDir := c.String("cache-dir"); cacheDir != "" {
		cache, err := badger.OpenCache(cacheDir, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open embedding cache: %w", err)
		}
		opts = append(opts, retrieval.WithEmbeddingCache(cache))
	}

	return retrieval.Open(ctx, c.String("corpus"), opts...)
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	ctx := context.Background()
	retriever, err := openRetriever(ctx, c)
	if err != nil {
		return err
	}
	defer retriever.Close()

	engine, err := retriever.Engine(c.String("engine"))
	if err != nil {
		return err
	}

	results, err := engine.Search(ctx, query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%d)[%0.3f]\n", i, hit.Passage.Text, hit.Passage.Id, hit.Score)
	}

	return nil
}

func convertCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: convert INPUT.jsonl OUTPUT.json")
	}

	in, err := os.Open(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	if err := docstore.ConvertJSONL(in, out); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()
	retriever, err := openRetriever(ctx, c)
	if err != nil {
		return err
	}
	defer retriever.Close()

	fmt.Printf("Passages:   %d\n", len(retriever.Corpus()))
	fmt.Printf("Vectors:    %d (dimension %d)\n",
		retriever.Vector().Len(), retriever.Vector().Dimension())
	fmt.Printf("Noun terms: %d\n", retriever.Lexical().Terms())

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
