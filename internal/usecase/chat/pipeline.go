package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/retrieval"
)

// historyWindow is how many recent turns are rendered into the prompt.
const historyWindow = 6

const promptTemplate = `You are a helpful AI assistant for the company.
Answer the user's question using the information provided in the context below.

Use the context to provide accurate, specific answers. If the information is not in the context, say so politely.

Context:
%s
%s

Question: %s

Answer:`

// pipeline is a tenant-scoped answer chain: retrieve relevant passages,
// render recent history, prompt the model.
type pipeline struct {
	index   *retrieval.Index
	ai      AIConnector
	history HistoryStore
	topK    int
}

func (p *pipeline) answer(ctx context.Context, query, historyKey string) (string, error) {
	passages, err := p.index.Search(ctx, query, p.topK)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate,
		strings.Join(passages, "\n\n"),
		renderHistory(p.history.Recent(historyKey, historyWindow)),
		query,
	)

	// The model's text is returned verbatim, no post-processing.
	return p.ai.Complete(ctx, prompt)
}

func renderHistory(turns []entity.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}
	return strings.Join(lines, "\n")
}
