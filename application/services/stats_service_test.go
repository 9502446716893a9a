package services

import (
	"testing"

	"gogarvis-backend/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func TestStatsSnapshot(t *testing.T) {
	svc := NewStatsService(catalog.NewStore())

	snapshot := svc.Snapshot()

	assert.Equal(t, 18, snapshot.TotalDocuments)
	assert.Equal(t, 30, snapshot.TotalGlossaryTerms)
	assert.Equal(t, 8, snapshot.TotalComponents)
	assert.Equal(t, 8, snapshot.ActiveComponents)
	assert.Equal(t, 18, snapshot.TotalPigpenOperators)
	assert.Equal(t, 1, snapshot.TotalBrandProfiles)
	assert.Equal(t, 5, snapshot.GlossaryCategories)
	assert.Equal(t, "OPERATIONAL", snapshot.SystemStatus)
	assert.Equal(t, "INTACT", snapshot.AuthorityChain)
}
