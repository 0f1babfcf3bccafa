package lexilaw

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Ajaykumar12345677/lexilawbackend/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relevanceEmbedder embeds every corpus text to the same direction and the
// query close to it, so every section matches with a high score.
func relevanceEmbedder() *mock.MockEmbedder {
	m := mock.NewMockEmbedder()
	m.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0.85, 0.15, 0.0}, nil
	}
	m.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{0.9, 0.1, 0.0}
		}
		return out, nil
	}
	return m
}

func writeCorpus(t *testing.T, ipc string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ipc.json"), []byte(ipc), 0644))
	return dir
}

func TestEngine_Analyze_EndToEnd(t *testing.T) {
	dir := writeCorpus(t, `[
		{"section": "section-379", "offence": "Theft",
		 "desc": "theft of movable property punishable with imprisonment"}
	]`)

	engine, err := NewEngine(context.Background(), dir, WithEmbedder(relevanceEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	require.Equal(t, 1, engine.CorpusSize())

	reports, err := engine.Analyze(context.Background(), "someone stole my phone")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "IPC 379", report.Code)
	assert.Equal(t, "Theft", report.Title)
	assert.GreaterOrEqual(t, report.Score, float32(0.2))
	require.NotEmpty(t, report.Guidance)
	assert.Equal(t, "Immediately file an FIR at the nearest police station.", report.Guidance[0])
}

func TestEngine_Analyze_SimplifiedPreference(t *testing.T) {
	dir := writeCorpus(t, `[
		{"section": "section-379", "offence": "Theft",
		 "desc": "Whoever intends to take dishonestly any movable property.",
		 "simpleDesc": "Taking someone's things without permission is theft."},
		{"section": "section-380", "offence": "Theft in dwelling house",
		 "desc": "Whoever commits theft in any building used as a human dwelling.",
		 "simpleDesc": "short"}
	]`)

	engine, err := NewEngine(context.Background(), dir, WithEmbedder(relevanceEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	reports, err := engine.Analyze(context.Background(), "my flatmate took my laptop")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	byCode := map[string]int{}
	for i, r := range reports {
		byCode[r.Code] = i
	}

	// Substantial curated text is used verbatim
	curated := reports[byCode["IPC 379"]]
	assert.Equal(t, "Taking someone's things without permission is theft.", curated.SimplifiedExplanation)

	// A curated text at or under the floor falls back to the pass-through
	fallback := reports[byCode["IPC 380"]]
	assert.Equal(t, fallback.Description, fallback.SimplifiedExplanation)
}

func TestEngine_Analyze_TruncatesFallback(t *testing.T) {
	longDesc := strings.Repeat("whoever commits theft ", 40) // well over 512 chars

	dir := writeCorpus(t, `[
		{"section": "section-379", "offence": "Theft", "desc": "`+longDesc+`"}
	]`)

	engine, err := NewEngine(context.Background(), dir, WithEmbedder(relevanceEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	reports, err := engine.Analyze(context.Background(), "theft")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, DefaultTruncateAt, utf8.RuneCountInString(reports[0].SimplifiedExplanation))
	assert.True(t, strings.HasPrefix(reports[0].Description, reports[0].SimplifiedExplanation))
}

func TestEngine_Analyze_EmptyCorpus(t *testing.T) {
	engine, err := NewEngine(context.Background(), t.TempDir(), WithEmbedder(relevanceEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	reports, err := engine.Analyze(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestEngine_Options(t *testing.T) {
	dir := writeCorpus(t, `[
		{"section": "section-379", "offence": "Theft", "desc": "theft"},
		{"section": "section-380", "offence": "Theft in dwelling house", "desc": "theft in a house"},
		{"section": "section-381", "offence": "Theft by clerk or servant", "desc": "theft by servant"}
	]`)

	engine, err := NewEngine(context.Background(), dir,
		WithEmbedder(relevanceEmbedder()),
		WithTopK(1),
		WithThreshold(0.1),
	)
	require.NoError(t, err)
	defer engine.Close()

	reports, err := engine.Analyze(context.Background(), "stolen")
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}
