package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge_base.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFiltersByCompany(t *testing.T) {
	path := writeCSV(t, `company_id,question,answer
acme,What are your hours?,We are open 9-5.
globex,Where are you?,We are in Springfield.
acme,How do I contact support?,Email support@acme.example.
`)

	loader := NewCSVLoader(path, zap.NewNop())
	passages, err := loader.Load(context.Background(), "acme")
	require.NoError(t, err)

	require.Len(t, passages, 2)
	assert.Equal(t, "What are your hours? We are open 9-5.", passages[0])
	assert.Equal(t, "How do I contact support? Email support@acme.example.", passages[1])
}

func TestLoadUnknownCompanyGetsPlaceholder(t *testing.T) {
	path := writeCSV(t, `company_id,question,answer
acme,What are your hours?,We are open 9-5.
`)

	loader := NewCSVLoader(path, zap.NewNop())
	passages, err := loader.Load(context.Background(), "ghost")
	require.NoError(t, err)

	assert.Equal(t, []string{PlaceholderPassage}, passages)
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewCSVLoader(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop())

	_, err := loader.Load(context.Background(), "acme")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLoadReorderedColumns(t *testing.T) {
	path := writeCSV(t, `answer,company_id,question
We are open 9-5.,acme,What are your hours?
`)

	loader := NewCSVLoader(path, zap.NewNop())
	passages, err := loader.Load(context.Background(), "acme")
	require.NoError(t, err)

	require.Len(t, passages, 1)
	assert.Equal(t, "What are your hours? We are open 9-5.", passages[0])
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	loader := NewCSVLoader(path, zap.NewNop())
	passages, err := loader.Load(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, []string{PlaceholderPassage}, passages)
}
