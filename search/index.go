package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Ajaykumar12345677/lexilawbackend/storage"
	"github.com/panjf2000/ants/v2"
)

// buildIndex computes the embedding for every section's search text and
// stores the vectors index-aligned with the corpus. Cached embeddings are
// used where available; the remainder is embedded in batches spread over a
// worker pool. Cache failures degrade to re-embedding, never to an error.
func (m *Matcher) buildIndex(ctx context.Context) error {
	m.vectors = make([][]float32, len(m.sections))

	pending := make([]int, 0, len(m.sections))
	if m.cache != nil {
		for i := range m.sections {
			vector, err := m.cache.Get(ctx, m.sections[i].SearchID())
			if err == nil {
				m.vectors[i] = vector
				continue
			}
			if !errors.Is(err, storage.ErrNotFound) {
				m.logger.Warn("embedding cache read failed", "code", m.sections[i].Code, "err", err)
			}
			pending = append(pending, i)
		}
		m.logger.Info("embedding cache consulted",
			"hits", len(m.sections)-len(pending), "misses", len(pending))
	} else {
		for i := range m.sections {
			pending = append(pending, i)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	pool, err := ants.NewPool(m.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(pending); start += m.batchSize {
		end := min(start+m.batchSize, len(pending))
		batch := pending[start:end]

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for j, idx := range batch {
				texts[j] = m.sections[idx].SearchText
			}

			embeddings, err := m.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				fail(err)
				return
			}
			if len(embeddings) != len(batch) {
				fail(fmt.Errorf("embedding result mismatch: expected %d, received %d", len(batch), len(embeddings)))
				return
			}

			// Batches cover disjoint indices, so no lock is needed here
			for j, idx := range batch {
				m.vectors[idx] = embeddings[j]
			}
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	if m.cache != nil {
		for _, idx := range pending {
			if err := m.cache.Put(ctx, m.sections[idx].SearchID(), m.vectors[idx]); err != nil {
				m.logger.Warn("embedding cache write failed", "code", m.sections[idx].Code, "err", err)
			}
		}
	}

	m.logger.Info("corpus embeddings computed",
		"sections", len(m.sections), "embedded", len(pending))
	return nil
}
