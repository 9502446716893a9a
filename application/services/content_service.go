package services

import (
	"context"
	"fmt"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/domain/catalog"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/observability"

	"go.uber.org/zap"
)

// PlaceholderContent is returned when an artifact exists but yields no
// extractable text. It is deliberately distinct from an empty string so
// callers can tell "no content available" from an extraction crash.
const PlaceholderContent = "Content could not be extracted from this PDF."

// ContentService resolves a document's text content on demand. Listings never
// touch artifacts, so they stay cheap.
type ContentService struct {
	store     *catalog.Store
	artifacts ports.ArtifactStore
	extractor ports.TextExtractor
	tracer    *observability.Tracer
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewContentService creates a content service
func NewContentService(
	store *catalog.Store,
	artifacts ports.ArtifactStore,
	extractor ports.TextExtractor,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		store:     store,
		artifacts: artifacts,
		extractor: extractor,
		tracer:    tracer,
		metrics:   metrics,
		logger:    logger,
	}
}

// ResolveContent returns the document metadata and its extracted text. The
// document metadata and the backing artifact must both exist; extraction
// failures degrade to diagnostic content instead of failing the call, since
// the portal must stay browsable even when one artifact is malformed.
func (s *ContentService) ResolveContent(ctx context.Context, filename string) (catalog.Document, string, error) {
	doc, err := s.store.DocumentByFilename(filename)
	if err != nil {
		return catalog.Document{}, "", err
	}

	data, err := s.artifacts.Read(ctx, filename)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return catalog.Document{}, "", err
		}
		return catalog.Document{}, "", apperrors.NewInternalError("failed to read document artifact").WithCause(err)
	}

	var text string
	extractErr := s.tracer.TraceFunction(ctx, "ExtractText", func(ctx context.Context) error {
		var e error
		text, e = s.extractor.Extract(ctx, data)
		return e
	})
	if extractErr != nil {
		s.logger.Error("Document text extraction failed",
			zap.String("filename", filename),
			zap.Error(extractErr),
		)
		s.metrics.IncrementCounter(ctx, "ContentExtractionFailure")
		return doc, fmt.Sprintf("Error extracting content: %v", extractErr), nil
	}

	if text == "" {
		return doc, PlaceholderContent, nil
	}
	return doc, text, nil
}
