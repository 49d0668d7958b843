package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axisEmbedder maps known texts to fixed vectors so similarity is
// predictable in tests.
type axisEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (e *axisEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = e.vectors[t]
	}
	return out, nil
}

func (e *axisEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.vectors[text], nil
}

func newAxisEmbedder() *axisEmbedder {
	return &axisEmbedder{vectors: map[string][]float32{
		"opening hours":     {1, 0, 0},
		"office location":   {0, 1, 0},
		"refund policy":     {0, 0, 1},
		"when are you open": {0.9, 0.1, 0},
	}}
}

func TestSearchRanksBySimilarity(t *testing.T) {
	embedder := newAxisEmbedder()
	passages := []string{"opening hours", "office location", "refund policy"}

	index, err := BuildIndex(context.Background(), embedder, passages)
	require.NoError(t, err)
	assert.Equal(t, 3, index.Size())

	got, err := index.Search(context.Background(), "when are you open", 2)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "opening hours", got[0])
}

func TestSearchKLargerThanCorpus(t *testing.T) {
	embedder := newAxisEmbedder()

	index, err := BuildIndex(context.Background(), embedder, []string{"opening hours"})
	require.NoError(t, err)

	got, err := index.Search(context.Background(), "when are you open", 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBuildIndexEmptyCorpus(t *testing.T) {
	_, err := BuildIndex(context.Background(), newAxisEmbedder(), nil)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestBuildIndexEmbedderFailure(t *testing.T) {
	embedder := &axisEmbedder{err: errors.New("quota exhausted")}

	_, err := BuildIndex(context.Background(), embedder, []string{"a"})
	assert.ErrorIs(t, err, entity.ErrUpstream)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float32{0, 0}, []float32{1, 1}))
}
