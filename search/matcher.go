package search

import (
	"context"
	"log/slog"
	"runtime"
	"slices"

	"github.com/Ajaykumar12345677/lexilawbackend/ai"
	"github.com/Ajaykumar12345677/lexilawbackend/core"
	"github.com/Ajaykumar12345677/lexilawbackend/storage"
)

// DefaultBatchSize is the number of search texts embedded per batch call
// while building the corpus index.
const DefaultBatchSize = 32

// Matcher ranks the legal corpus against queries by cosine similarity.
// All state is computed at construction and read-only afterwards, so a single
// Matcher serves concurrent Search calls without locking.
type Matcher struct {
	sections []core.LegalSection
	vectors  [][]float32 // index-aligned with sections
	embedder ai.Embedder
	cache    storage.VectorCache
	logger   *slog.Logger

	poolSize  int
	batchSize int
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithVectorCache sets a persistent embedding cache consulted before the
// embedder while building the index. Default is no cache: the full corpus is
// re-embedded at every startup.
func WithVectorCache(cache storage.VectorCache) Option {
	return func(m *Matcher) error {
		m.cache = cache
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}
		m.poolSize = size
		return nil
	}
}

// WithBatchSize sets how many search texts are embedded per batch call.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}
		m.batchSize = size
		return nil
	}
}

// NewMatcher creates a matcher over the given corpus and embeds every
// section's search text. This is the expensive startup step: it blocks until
// the whole index is built and must succeed before any query is served.
func NewMatcher(ctx context.Context, sections []core.LegalSection, embedder ai.Embedder, opts ...Option) (*Matcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	m := &Matcher{
		sections:  sections,
		embedder:  embedder,
		logger:    slog.Default(),
		poolSize:  poolSize,
		batchSize: DefaultBatchSize,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if err := m.buildIndex(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// Size returns the number of sections in the corpus.
func (m *Matcher) Size() int {
	return len(m.sections)
}

// Search ranks the corpus against the query and returns up to topK matches
// scoring at least threshold, in descending score order. Equal scores keep
// ascending corpus order, so results are deterministic. topK larger than the
// corpus is clamped; an empty corpus yields an empty result.
//
// The only error path is the query embedding call itself.
func (m *Matcher) Search(ctx context.Context, query string, topK int, threshold float32) ([]core.MatchResult, error) {
	if topK > len(m.sections) {
		topK = len(m.sections)
	}
	if topK <= 0 {
		return []core.MatchResult{}, nil
	}

	queryVector, err := m.embedder.EmbedText(ctx, query)
	if err != nil {
		m.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	scores := make([]float32, len(m.vectors))
	for i, vector := range m.vectors {
		scores[i] = CosineSimilarity(queryVector, vector)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if scores[a] > scores[b] {
			return -1
		}
		if scores[a] < scores[b] {
			return 1
		}
		return a - b
	})

	results := make([]core.MatchResult, 0, topK)
	for _, idx := range order[:topK] {
		if scores[idx] < threshold {
			continue
		}
		results = append(results, core.MatchResult{
			Section: &m.sections[idx],
			Score:   scores[idx],
		})
	}

	return results, nil
}
