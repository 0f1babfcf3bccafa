package mock

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	first, err := m.EmbedText(ctx, "theft of movable property")
	if err != nil {
		t.Fatalf("EmbedText() error = %v", err)
	}
	second, err := m.EmbedText(ctx, "theft of movable property")
	if err != nil {
		t.Fatalf("EmbedText() error = %v", err)
	}

	if len(first) != 384 {
		t.Errorf("vector dimension = %d, want 384", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("vectors differ at index %d: %v vs %v", i, first[i], second[i])
		}
	}

	var sumSquares float64
	for _, v := range first {
		sumSquares += float64(v) * float64(v)
	}
	if math.Abs(sumSquares-1) > 1e-4 {
		t.Errorf("vector norm^2 = %v, want 1", sumSquares)
	}
}

func TestMockEmbedder_CallCount(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	m.EmbedText(ctx, "a")
	m.EmbedTexts(ctx, []string{"b", "c"})

	if got := m.CallCount(); got != 2 {
		t.Errorf("CallCount() = %d, want 2", got)
	}

	m.Reset()
	if got := m.CallCount(); got != 0 {
		t.Errorf("CallCount() after Reset = %d, want 0", got)
	}
}

func TestMockEmbedder_ConcurrentCalls(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	// The embedder contract requires thread safety; the index builder
	// issues batch calls from concurrent pool workers.
	const workers = 8
	const callsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < callsPerWorker; i++ {
				if _, err := m.EmbedTexts(ctx, []string{fmt.Sprintf("text %d-%d", w, i)}); err != nil {
					t.Errorf("EmbedTexts() error = %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if got := m.CallCount(); got != workers*callsPerWorker {
		t.Errorf("CallCount() = %d, want %d", got, workers*callsPerWorker)
	}
}
