package catalog

import (
	"time"

	apperrors "gogarvis-backend/pkg/errors"
)

// Store aggregates every catalog the portal serves. It is built once at
// startup from the canonical tables and is read-only afterwards.
type Store struct {
	Documents  *Catalog[Document]
	Glossary   *Catalog[GlossaryTerm]
	Components *Catalog[Component]
	Operators  *Catalog[Operator]
	Brands     *Catalog[BrandProfile]
}

// NewStore builds the catalog store from the canonical tables, stamping
// activity and creation metadata the way the seeder does.
func NewStore() *Store {
	now := time.Now().UTC()

	docs := CanonicalDocuments()
	for i := range docs {
		docs[i].IsActive = true
		docs[i].CreatedAt = now
	}

	terms := CanonicalGlossary()
	for i := range terms {
		terms[i].IsActive = true
	}

	return &Store{
		Documents:  NewCatalog("document", docs),
		Glossary:   NewCatalog("glossary term", terms),
		Components: NewCatalog("component", CanonicalComponents()),
		Operators:  NewCatalog("operator", CanonicalOperators()),
		Brands:     NewCatalog("brand profile", CanonicalBrands()),
	}
}

// DocumentByFilename returns the document whose backing artifact has the
// given filename
func (s *Store) DocumentByFilename(filename string) (Document, error) {
	for _, d := range s.Documents.All() {
		if d.Filename == filename {
			return d, nil
		}
	}
	return Document{}, apperrors.NewNotFoundError("document")
}
