package catalog

import (
	"testing"

	apperrors "gogarvis-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGetByID(t *testing.T) {
	c := NewCatalog("component", CanonicalComponents())

	t.Run("known id", func(t *testing.T) {
		component, err := c.GetByID("sovereign")
		require.NoError(t, err)
		assert.Equal(t, "sovereign", component.ID)
	})

	t.Run("unknown id is a typed not-found error", func(t *testing.T) {
		_, err := c.GetByID("does-not-exist")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestCatalogCategories(t *testing.T) {
	docs := []Document{
		{ID: "1", Category: "MOSE"},
		{ID: "2", Category: "GARVIS"},
		{ID: "3", Category: "MOSE"},
	}
	c := NewCatalog("document", docs)

	assert.Equal(t, []string{"GARVIS", "MOSE"}, c.Categories())
}

func TestStore(t *testing.T) {
	store := NewStore()

	t.Run("canonical table sizes", func(t *testing.T) {
		assert.Equal(t, 18, store.Documents.Len())
		assert.Equal(t, 30, store.Glossary.Len())
		assert.Equal(t, 8, store.Components.Len())
		assert.Equal(t, 18, store.Operators.Len())
		assert.Equal(t, 1, store.Brands.Len())
	})

	t.Run("documents are stamped active with a creation time", func(t *testing.T) {
		for _, doc := range store.Documents.All() {
			assert.True(t, doc.IsActive)
			assert.False(t, doc.CreatedAt.IsZero())
		}
	})

	t.Run("lookup by filename", func(t *testing.T) {
		doc, err := store.DocumentByFilename("61852e42-7072-4c17-a832-1dd2f7a00dae_4.3_mose__executive_creative__systems_brief.pdf")
		require.NoError(t, err)
		assert.Equal(t, "MOSE Executive Systems Brief", doc.Title)

		_, err = store.DocumentByFilename("nope.pdf")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("every component is active", func(t *testing.T) {
		for _, component := range store.Components.All() {
			assert.True(t, component.IsActive(), component.ID)
		}
	})
}
