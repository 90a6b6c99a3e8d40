package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/moviefy/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `[
		{"id": 7, "title": "Moneyball", "career_skills": "analytics", "industry": "Business",
		 "career_stage": "Mid-Level", "summary": null, "educational_value_score": 7},
		{"title": "Jiro Dreams of Sushi", "career_skills": null, "industry": "Culinary"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	items, err := NewFileStore(path).LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, "Moneyball", items[0].Title)
	assert.Empty(t, items[0].Summary)
	assert.Equal(t, 7, items[0].EducationalValue())

	assert.Equal(t, int64(2), items[1].ID)
	assert.Empty(t, items[1].CareerSkills)
	assert.Equal(t, types.DefaultEducationalValue, items[1].EducationalValue())
}

func TestFileStore_Missing(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "nope.json")).LoadCatalog(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestFileStore_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0644))

	_, err := NewFileStore(path).LoadCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog JSON")
}

func TestStaticStore_ReturnsCopy(t *testing.T) {
	store := &StaticStore{Items: []types.CatalogItem{{ID: 1, Title: "Hidden Figures"}}}

	items, err := store.LoadCatalog(context.Background())
	require.NoError(t, err)
	items[0].Title = "changed"

	assert.Equal(t, "Hidden Figures", store.Items[0].Title)
}

func TestSeedCatalogDecodes(t *testing.T) {
	items, err := NewFileStore(filepath.Join("..", "..", "testdata", "catalog.json")).LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(items), 10)
	for _, item := range items {
		assert.NotEmpty(t, item.Title)
	}
}
