// Copyright 2025 Poiesic Systems
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

	"github.com/poiesic/talentsearch"
	"github.com/poiesic/talentsearch/ai"
	"github.com/poiesic/talentsearch/explain"
	"github.com/poiesic/talentsearch/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "talentsearch",
		Usage: "Natural language candidate search over pre-embedded applicant data",
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
				Name:      "ingest",
				Usage:     "Load a pre-embedded applicant dataset into the database",
				Action:    ingestCommand,
				ArgsUsage: "",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "data",
						Usage:    "Path to the applicant dataset JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of applicants to upsert per batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent upsert workers (0 = CPU count / 2)",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "dim",
						Usage: "Expected embedding dimensionality",
						Value: talentsearch.DefaultDim,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search applicants with a natural language query",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "no-rerank",
						Usage: "Disable skills-based re-ranking",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible service host URL for embedding and parsing",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "parser-model",
						Usage: "Primary query parsing model name",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "fallback-model",
						Usage: "Fallback parsing model name (empty disables the fallback)",
						Value: "llama3.2:3b",
					},
					&cli.IntFlag{
						Name:  "dim",
						Usage: "Expected embedding dimensionality",
						Value: talentsearch.DefaultDim,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	system, err := talentsearch.NewSystem(c.String("db"),
		talentsearch.WithDim(c.Int("dim")))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer system.Close()

	pipeline, err := system.NewIngestionPipeline(pipelineOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	dataPath := c.String("data")
	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Dataset:  %s\n", dataPath)
	fmt.Fprintln(os.Stderr)

	report, err := pipeline.IngestFile(ctx, dataPath)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Total:   %d\n", report.Total)
	fmt.Printf("Kept:    %d\n", report.Kept)
	fmt.Printf("Dropped: %d\n", report.Dropped)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithParserModel(c.String("parser-model")),
		ai.WithFallbackModel(c.String("fallback-model")),
	)
	if c.String("fallback-model") == "" {
		aiConfig.FallbackHost = ""
	}

	system, err := talentsearch.NewSystem(c.String("db"),
		talentsearch.WithAIConfig(aiConfig),
		talentsearch.WithDim(c.Int("dim")))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer system.Close()

	parser, err := system.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create query parser: %w", err)
	}

	engine, err := system.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create search engine: %w", err)
	}

	parsed := parser.Parse(ctx, query)
	if parsed.Degraded {
		slog.Warn("query parsing degraded, searching without filters")
	}

	results, err := engine.Search(ctx, parsed, c.Int("limit"), !c.Bool("no-rerank"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matching applicants found.")
		return nil
	}

	for i, candidate := range results {
		explained := explain.Explain(candidate, parsed)
		fmt.Printf("\n[%d] %s\n", i+1, strings.Repeat("=", 76))
		fmt.Println(explain.FormatResult(explained))
	}

	return nil
}

func pipelineOptions(c *cli.Context) []ingestion.Option {
	opts := []ingestion.Option{
		ingestion.WithBatchSize(c.Int("batch-size")),
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, ingestion.WithPoolSize(size))
	}
	return opts
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
