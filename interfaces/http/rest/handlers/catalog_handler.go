package handlers

import (
	"net/http"

	"gogarvis-backend/domain/catalog"
	"gogarvis-backend/pkg/common"
	apperrors "gogarvis-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only catalog endpoints: documents, glossary
// terms, architecture components, Pig Pen operators and brand profiles. Every
// list endpoint accepts optional category and search query parameters.
type CatalogHandler struct {
	store  *catalog.Store
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store, errors *apperrors.ErrorHandler, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		errors: errors,
		logger: logger,
	}
}

// ListDocuments handles GET /documents
func (h *CatalogHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	result := filterQuery(r, h.store.Documents)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": result.Entries,
		"total":     result.Total,
	})
}

// DocumentCategories handles GET /documents/categories/list
func (h *CatalogHandler) DocumentCategories(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Documents.Categories(),
	})
}

// ListGlossary handles GET /glossary
func (h *CatalogHandler) ListGlossary(w http.ResponseWriter, r *http.Request) {
	result := filterQuery(r, h.store.Glossary)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"terms": result.Entries,
		"total": result.Total,
	})
}

// GlossaryCategories handles GET /glossary/categories
func (h *CatalogHandler) GlossaryCategories(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Glossary.Categories(),
	})
}

// ListComponents handles GET /architecture/components
func (h *CatalogHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	result := filterQuery(r, h.store.Components)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"components": result.Entries,
		"total":      result.Total,
	})
}

// GetComponent handles GET /architecture/components/{componentID}
func (h *CatalogHandler) GetComponent(w http.ResponseWriter, r *http.Request) {
	component, err := h.store.Components.GetByID(chi.URLParam(r, "componentID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, component)
}

// ListOperators handles GET /pigpen
func (h *CatalogHandler) ListOperators(w http.ResponseWriter, r *http.Request) {
	result := filterQuery(r, h.store.Operators)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"operators": result.Entries,
		"total":     result.Total,
	})
}

// GetOperator handles GET /pigpen/{operatorID}
func (h *CatalogHandler) GetOperator(w http.ResponseWriter, r *http.Request) {
	operator, err := h.store.Operators.GetByID(chi.URLParam(r, "operatorID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, operator)
}

// OperatorCategories handles GET /pigpen/categories/list
func (h *CatalogHandler) OperatorCategories(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Operators.Categories(),
	})
}

// ListBrands handles GET /brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	result := filterQuery(r, h.store.Brands)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"brands": result.Entries,
		"total":  result.Total,
	})
}

// GetBrand handles GET /brands/{brandID}
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.store.Brands.GetByID(chi.URLParam(r, "brandID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, brand)
}

// filterQuery applies the category and search query parameters to a catalog
func filterQuery[T catalog.Entry](r *http.Request, c *catalog.Catalog[T]) catalog.Result[T] {
	q := r.URL.Query()
	return catalog.Filter(c.All(), q.Get("category"), q.Get("search"))
}
