// Copyright 2025 LexiLaw Authors
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

	lexilaw "github.com/Ajaykumar12345677/lexilawbackend"
	"github.com/Ajaykumar12345677/lexilawbackend/ai"
	"github.com/Ajaykumar12345677/lexilawbackend/api"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "lexilaw",
		Usage: "Legal aid backend for IPC and CrPC section matching",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP analysis service",
				Action: serveCommand,
				Flags: append(engineFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address for the HTTP server",
						Value:   ":8000",
						EnvVars: []string{"LEXILAW_ADDR"},
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Analyze a problem description from the command line",
				ArgsUsage: "<problem description>",
				Action:    searchCommand,
				Flags:     engineFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// engineFlags are shared by every command that constructs an engine.
func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "Directory containing ipc.json and crpc.json",
			Value:   "./data",
			EnvVars: []string{"LEXILAW_DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"LEXILAW_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "all-minilm",
			EnvVars: []string{"LEXILAW_EMBEDDING_MODEL"},
		},
		&cli.IntFlag{
			Name:    "topk",
			Usage:   "Number of sections to return per query",
			Value:   lexilaw.DefaultTopK,
			EnvVars: []string{"LEXILAW_TOPK"},
		},
		&cli.Float64Flag{
			Name:    "threshold",
			Usage:   "Minimum cosine similarity for a match",
			Value:   float64(lexilaw.DefaultThreshold),
			EnvVars: []string{"LEXILAW_THRESHOLD"},
		},
		&cli.StringFlag{
			Name:    "cache-dir",
			Usage:   "BadgerDB directory for cached embeddings (empty disables caching)",
			EnvVars: []string{"LEXILAW_CACHE_DIR"},
		},
	}
}

func newEngine(c *cli.Context) (*lexilaw.Engine, error) {
	opts := []lexilaw.Option{
		lexilaw.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
		lexilaw.WithTopK(c.Int("topk")),
		lexilaw.WithThreshold(float32(c.Float64("threshold"))),
	}
	if cacheDir := c.String("cache-dir"); cacheDir != "" {
		opts = append(opts, lexilaw.WithVectorCachePath(cacheDir))
	}

	engine, err := lexilaw.NewEngine(context.Background(), c.String("data-dir"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, nil
}

func serveCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	slog.Info("starting lexilaw server",
		"addr", c.String("addr"),
		"corpus_size", engine.CorpusSize())

	router := api.NewRouter(engine)
	return router.Run(c.String("addr"))
}

func searchCommand(c *cli.Context) error {
	problem := strings.Join(c.Args().Slice(), " ")
	if problem == "" {
		return fmt.Errorf("problem description is required")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	reports, err := engine.Analyze(context.Background(), problem)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Printf("Found %d matching sections\n", len(reports))
	for i, report := range reports {
		fmt.Printf("%d: %s '%s' [%0.3f]\n", i, report.Code, report.Title, report.Score)
		fmt.Printf("   %s\n", report.SimplifiedExplanation)
		for _, step := range report.Guidance {
			fmt.Printf("   - %s\n", step)
		}
	}
	return nil
}

func setup(c *cli.Context) error {
	// A missing .env file is not an error, environment flags just
	// fall back to their defaults.
	_ = godotenv.Load()

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
