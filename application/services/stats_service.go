package services

import "gogarvis-backend/domain/catalog"

// StatsSnapshot is the dashboard summary derived from the catalogs
type StatsSnapshot struct {
	TotalDocuments       int    `json:"total_documents"`
	TotalGlossaryTerms   int    `json:"total_glossary_terms"`
	TotalComponents      int    `json:"total_components"`
	ActiveComponents     int    `json:"active_components"`
	TotalPigpenOperators int    `json:"total_pigpen_operators"`
	TotalBrandProfiles   int    `json:"total_brand_profiles"`
	DocumentCategories   int    `json:"document_categories"`
	GlossaryCategories   int    `json:"glossary_categories"`
	SystemStatus         string `json:"system_status"`
	AuthorityChain       string `json:"authority_chain"`
}

// StatsService derives summary counts from the catalogs on demand. The
// catalogs are small and static within a process lifetime, so nothing is
// cached.
type StatsService struct {
	store *catalog.Store
}

// NewStatsService creates a stats service
func NewStatsService(store *catalog.Store) *StatsService {
	return &StatsService{store: store}
}

// Snapshot computes the current summary. Pure function of catalog state.
func (s *StatsService) Snapshot() StatsSnapshot {
	active := 0
	for _, c := range s.store.Components.All() {
		if c.IsActive() {
			active++
		}
	}

	return StatsSnapshot{
		TotalDocuments:       s.store.Documents.Len(),
		TotalGlossaryTerms:   s.store.Glossary.Len(),
		TotalComponents:      s.store.Components.Len(),
		ActiveComponents:     active,
		TotalPigpenOperators: s.store.Operators.Len(),
		TotalBrandProfiles:   s.store.Brands.Len(),
		DocumentCategories:   len(s.store.Documents.Categories()),
		GlossaryCategories:   len(s.store.Glossary.Categories()),
		SystemStatus:         "OPERATIONAL",
		AuthorityChain:       "INTACT",
	}
}
