package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func briefAndSpec() []Document {
	return []Document{
		{ID: "1", Filename: "garvis_brief.pdf", Title: "GARVIS Brief", Category: "GARVIS", Description: "Executive overview"},
		{ID: "2", Filename: "mose_spec.pdf", Title: "MOSE Spec", Category: "MOSE", Description: "Routing logic"},
	}
}

func TestFilter(t *testing.T) {
	t.Run("no parameters returns every entry in original order", func(t *testing.T) {
		docs := CanonicalDocuments()
		result := Filter(docs, "", "")

		require.Equal(t, len(docs), result.Total)
		for i := range docs {
			assert.Equal(t, docs[i].ID, result.Entries[i].ID)
		}
	})

	t.Run("all sentinel matches every category", func(t *testing.T) {
		result := Filter(briefAndSpec(), CategoryAll, "")
		assert.Equal(t, 2, result.Total)
	})

	t.Run("category match is case-insensitive", func(t *testing.T) {
		result := Filter(briefAndSpec(), "garvis", "")
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "1", result.Entries[0].ID)
	})

	t.Run("unknown category returns empty result", func(t *testing.T) {
		result := Filter(briefAndSpec(), "TELA", "")
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Entries)
	})

	t.Run("search is case-insensitive substring match", func(t *testing.T) {
		result := Filter(briefAndSpec(), "", "spec")
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "2", result.Entries[0].ID)
	})

	t.Run("search matches the description field", func(t *testing.T) {
		result := Filter(briefAndSpec(), "", "routing")
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "2", result.Entries[0].ID)
	})

	t.Run("category and search apply together", func(t *testing.T) {
		result := Filter(briefAndSpec(), "GARVIS", "spec")
		assert.Equal(t, 0, result.Total)

		result = Filter(briefAndSpec(), "GARVIS", "brief")
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "1", result.Entries[0].ID)
	})

	t.Run("all with empty search returns everything", func(t *testing.T) {
		result := Filter(briefAndSpec(), "all", "")
		assert.Equal(t, 2, result.Total)
	})

	t.Run("glossary search covers term and definition", func(t *testing.T) {
		terms := CanonicalGlossary()

		byTerm := Filter(terms, "", "telauthorium")
		assert.Greater(t, byTerm.Total, 0)

		byDefinition := Filter(terms, "", "orchestration engine")
		require.Equal(t, 1, byDefinition.Total)
		assert.Equal(t, "MOSE", byDefinition.Entries[0].Term)
	})

	t.Run("operator search covers capabilities", func(t *testing.T) {
		result := Filter(CanonicalOperators(), "", "downside modeling")
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "tai-d-014", result.Entries[0].OperatorID)
	})

	t.Run("filter preserves entry order", func(t *testing.T) {
		docs := CanonicalDocuments()
		result := Filter(docs, "", "garvis")

		require.Greater(t, result.Total, 1)
		lastIdx := -1
		for _, entry := range result.Entries {
			idx := -1
			for i := range docs {
				if docs[i].ID == entry.ID {
					idx = i
					break
				}
			}
			require.NotEqual(t, -1, idx)
			assert.Greater(t, idx, lastIdx)
			lastIdx = idx
		}
	})
}
