package retrieval

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/majestic/ai-backend/internal/entity"
)

// Embedder turns text into dense vectors. Satisfied by the Gemini connector.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Index is an immutable in-memory vector index over a passage corpus.
// Built once per tenant and queried by cosine similarity.
type Index struct {
	embedder Embedder
	passages []string
	vectors  [][]float32
}

// BuildIndex embeds every passage and returns a ready-to-query index.
func BuildIndex(ctx context.Context, embedder Embedder, passages []string) (*Index, error) {
	if len(passages) == 0 {
		return nil, fmt.Errorf("%w: empty passage corpus", entity.ErrInvalidInput)
	}

	vectors, err := embedder.EmbedTexts(ctx, passages)
	if err != nil {
		return nil, fmt.Errorf("%w: embed corpus: %v", entity.ErrUpstream, err)
	}
	if len(vectors) != len(passages) {
		return nil, fmt.Errorf("%w: embedder returned %d vectors for %d passages",
			entity.ErrUpstream, len(vectors), len(passages))
	}

	return &Index{
		embedder: embedder,
		passages: passages,
		vectors:  vectors,
	}, nil
}

// Search returns up to k passages ranked by cosine similarity to the query.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]string, error) {
	qv, err := ix.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", entity.ErrUpstream, err)
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(ix.vectors))
	for i, v := range ix.vectors {
		ranked[i] = scored{idx: i, score: cosine(qv, v)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, 0, k)
	for _, r := range ranked[:k] {
		out = append(out, ix.passages[r.idx])
	}
	return out, nil
}

// Size reports how many passages the index holds.
func (ix *Index) Size() int {
	return len(ix.passages)
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
