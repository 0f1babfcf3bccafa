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


// Package lexilaw answers free-text descriptions of personal legal problems
// with the most relevant statutory sections, each annotated with a
// plain-language explanation and a deterministic action checklist.
//
// Engine is the single entry point: it loads and normalizes the corpus,
// embeds it once, and then serves Analyze calls concurrently over read-only
// state. The HTTP surface lives in the api package; the cmd/lexilaw binary
// wires both together.
package lexilaw

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/Ajaykumar12345677/lexilawbackend/ai"
	"github.com/Ajaykumar12345677/lexilawbackend/ai/openai"
	"github.com/Ajaykumar12345677/lexilawbackend/core"
	"github.com/Ajaykumar12345677/lexilawbackend/corpus"
	"github.com/Ajaykumar12345677/lexilawbackend/guidance"
	"github.com/Ajaykumar12345677/lexilawbackend/search"
	"github.com/Ajaykumar12345677/lexilawbackend/storage"
	"github.com/Ajaykumar12345677/lexilawbackend/storage/badger"
)

// Documented defaults for the tunable constants.
const (
	// DefaultTopK is the number of matches returned per query.
	DefaultTopK = 3

	// DefaultThreshold is the minimum similarity score for a match.
	// See the search package on why it is deliberately permissive.
	DefaultThreshold float32 = 0.25

	// DefaultSimplifiedFloor is the minimum length (in characters) for a
	// curated simplified description to be considered substantial.
	DefaultSimplifiedFloor = 10

	// DefaultTruncateAt caps the text handed to the simplification fallback.
	DefaultTruncateAt = 512
)

// Engine wires the corpus, the embedding index and the guidance rules into
// one query-answering unit. Construct it once at startup; it is safe for
// concurrent use afterwards.
type Engine struct {
	matcher    *search.Matcher
	resolver   *guidance.Resolver
	simplifier *guidance.Simplifier
	cache      storage.VectorCache
	logger     *slog.Logger

	topK            int
	threshold       float32
	simplifiedFloor int
	truncateAt      int
}

type engineOptions struct {
	aiConfig        *ai.Config
	embedder        ai.Embedder
	cachePath       string
	logger          *slog.Logger
	topK            int
	threshold       float32
	simplifiedFloor int
	truncateAt      int
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithAIConfig sets the embedding service configuration.
// Ignored when WithEmbedder is also given.
func WithAIConfig(cfg *ai.Config) Option {
	return func(o *engineOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the OpenAI-compatible
// client. Intended for tests.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithVectorCachePath enables the persistent embedding cache at the given
// directory. Default is no cache.
func WithVectorCachePath(path string) Option {
	return func(o *engineOptions) {
		o.cachePath = path
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithTopK sets the number of matches returned per query.
func WithTopK(topK int) Option {
	return func(o *engineOptions) {
		if topK > 0 {
			o.topK = topK
		}
	}
}

// WithThreshold sets the minimum similarity score for a match.
func WithThreshold(threshold float32) Option {
	return func(o *engineOptions) {
		o.threshold = threshold
	}
}

// WithSimplifiedFloor sets the substantial-text floor for curated
// simplified descriptions.
func WithSimplifiedFloor(floor int) Option {
	return func(o *engineOptions) {
		if floor >= 0 {
			o.simplifiedFloor = floor
		}
	}
}

// WithTruncateAt sets the truncation cap for the simplification fallback.
func WithTruncateAt(limit int) Option {
	return func(o *engineOptions) {
		if limit > 0 {
			o.truncateAt = limit
		}
	}
}

// NewEngine loads the corpus from dataDir, builds the embedding index and
// returns a ready engine. Any failure here is fatal for the process: serving
// queries without the model or the corpus would be worse than not starting.
func NewEngine(ctx context.Context, dataDir string, opts ...Option) (*Engine, error) {
	options := &engineOptions{
		aiConfig:        ai.DefaultConfig(),
		topK:            DefaultTopK,
		threshold:       DefaultThreshold,
		simplifiedFloor: DefaultSimplifiedFloor,
		truncateAt:      DefaultTruncateAt,
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	sections, err := corpus.NewLoader(dataDir, corpus.WithLogger(logger)).Load()
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	var cache storage.VectorCache
	if options.cachePath != "" {
		backend, err := badger.OpenBackend(options.cachePath, false)
		if err != nil {
			return nil, err
		}
		cache, err = badger.NewVectorCache(backend, options.aiConfig.EmbeddingModel)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	matcherOpts := []search.Option{search.WithLogger(logger)}
	if cache != nil {
		matcherOpts = append(matcherOpts, search.WithVectorCache(cache))
	}

	matcher, err := search.NewMatcher(ctx, sections, embedder, matcherOpts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		return nil, err
	}

	return &Engine{
		matcher:         matcher,
		resolver:        guidance.NewResolver(),
		simplifier:      guidance.NewSimplifier(),
		cache:           cache,
		logger:          logger,
		topK:            options.topK,
		threshold:       options.threshold,
		simplifiedFloor: options.simplifiedFloor,
		truncateAt:      options.truncateAt,
	}, nil
}

// Close releases engine resources.
func (e *Engine) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}

// CorpusSize returns the number of sections available for matching.
func (e *Engine) CorpusSize() int {
	return e.matcher.Size()
}

// Analyze ranks the corpus against the problem description and shapes each
// match into a full report: curated simplified text when substantial,
// fallback simplification otherwise, plus the guidance checklist and score.
//
// Validating that problem is non-empty is the transport layer's job;
// Analyze itself accepts any string.
func (e *Engine) Analyze(ctx context.Context, problem string) ([]core.SectionReport, error) {
	matches, err := e.matcher.Search(ctx, problem, e.topK, e.threshold)
	if err != nil {
		return nil, err
	}

	reports := make([]core.SectionReport, 0, len(matches))
	for _, match := range matches {
		section := match.Section

		simplified := section.SimplifiedDescription
		if utf8.RuneCountInString(simplified) <= e.simplifiedFloor {
			simplified = e.simplifier.Simplify(truncate(section.Description, e.truncateAt))
		}

		reports = append(reports, core.SectionReport{
			Code:                  section.Code,
			Title:                 section.Title,
			Description:           section.Description,
			SimplifiedExplanation: simplified,
			Punishment:            section.Punishment,
			Bailability:           section.Bailability,
			Cognizability:         section.Cognizability,
			Court:                 section.Court,
			Guidance:              e.resolver.Resolve(section, problem),
			Score:                 match.Score,
		})
	}

	return reports, nil
}

// truncate limits text to max characters.
func truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max])
}
