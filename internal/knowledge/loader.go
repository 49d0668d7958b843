package knowledge

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/entity"
	"go.uber.org/zap"
)

// PlaceholderPassage is indexed when a tenant has no rows in the knowledge
// base, so the retrieval pipeline always has at least one passage.
const PlaceholderPassage = "No knowledge base available for this company."

// CSVLoader reads tenant knowledge from a CSV file with columns
// company_id, question, answer. One passage per row: "question answer".
type CSVLoader struct {
	path   string
	logger *zap.Logger
}

func NewCSVLoader(path string, logger *zap.Logger) *CSVLoader {
	return &CSVLoader{path: path, logger: logger}
}

// Load returns the ordered passages for a tenant. The backing file missing
// entirely is a hard failure; a tenant simply having no rows yields the
// placeholder passage.
func (l *CSVLoader) Load(ctx context.Context, companyID string) ([]string, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: knowledge base %s", entity.ErrNotFound, l.path)
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	if len(rows) == 0 {
		return []string{PlaceholderPassage}, nil
	}

	cols := columnIndexes(rows[0])

	var passages []string
	for _, row := range rows[1:] {
		if cols.company >= len(row) || cols.question >= len(row) || cols.answer >= len(row) {
			continue
		}
		if row[cols.company] != companyID {
			continue
		}
		passages = append(passages, row[cols.question]+" "+row[cols.answer])
	}

	if len(passages) == 0 {
		ctxzap.Warn(ctx, "no knowledge base rows for company", zap.String("company_id", companyID))
		return []string{PlaceholderPassage}, nil
	}

	ctxzap.Info(ctx, "knowledge corpus loaded",
		zap.String("company_id", companyID),
		zap.Int("passage_count", len(passages)),
	)
	return passages, nil
}

type columns struct {
	company  int
	question int
	answer   int
}

func columnIndexes(header []string) columns {
	// Default to the canonical column order in case the header is absent.
	cols := columns{company: 0, question: 1, answer: 2}
	for i, name := range header {
		switch name {
		case "company_id":
			cols.company = i
		case "question":
			cols.question = i
		case "answer":
			cols.answer = i
		}
	}
	return cols
}
