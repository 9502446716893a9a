package services

import (
	"context"
	"errors"
	"testing"

	"gogarvis-backend/domain/catalog"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// knownFilename belongs to the canonical document table
const knownFilename = "61852e42-7072-4c17-a832-1dd2f7a00dae_4.3_mose__executive_creative__systems_brief.pdf"

// fakeArtifacts serves artifact bytes by filename
type fakeArtifacts struct {
	data map[string][]byte
	err  error
}

func (f *fakeArtifacts) Read(ctx context.Context, filename string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.data[filename]
	if !ok {
		return nil, apperrors.NewNotFoundError("document artifact")
	}
	return data, nil
}

// fakeExtractor returns a fixed extraction result
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	return f.text, f.err
}

func newTestContentService(artifacts *fakeArtifacts, extractor *fakeExtractor) *ContentService {
	return NewContentService(
		catalog.NewStore(),
		artifacts,
		extractor,
		observability.NewTracer("test", false),
		nil,
		zap.NewNop(),
	)
}

func TestResolveContent(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path returns extracted text", func(t *testing.T) {
		svc := newTestContentService(
			&fakeArtifacts{data: map[string][]byte{knownFilename: []byte("%PDF")}},
			&fakeExtractor{text: "MOSE routes work through operators."},
		)

		doc, content, err := svc.ResolveContent(ctx, knownFilename)
		require.NoError(t, err)
		assert.Equal(t, "MOSE Executive Systems Brief", doc.Title)
		assert.Equal(t, "MOSE routes work through operators.", content)
	})

	t.Run("unknown filename is not found", func(t *testing.T) {
		svc := newTestContentService(&fakeArtifacts{}, &fakeExtractor{})

		_, _, err := svc.ResolveContent(ctx, "unknown.pdf")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("known filename with missing artifact is not found", func(t *testing.T) {
		svc := newTestContentService(&fakeArtifacts{data: map[string][]byte{}}, &fakeExtractor{})

		_, _, err := svc.ResolveContent(ctx, knownFilename)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("empty extraction yields the placeholder, never an empty string", func(t *testing.T) {
		svc := newTestContentService(
			&fakeArtifacts{data: map[string][]byte{knownFilename: []byte("%PDF")}},
			&fakeExtractor{text: ""},
		)

		_, content, err := svc.ResolveContent(ctx, knownFilename)
		require.NoError(t, err)
		assert.Equal(t, PlaceholderContent, content)
	})

	t.Run("extraction failure degrades to a diagnostic string", func(t *testing.T) {
		svc := newTestContentService(
			&fakeArtifacts{data: map[string][]byte{knownFilename: []byte("not a pdf")}},
			&fakeExtractor{err: errors.New("pdf parsing panicked: bad xref")},
		)

		doc, content, err := svc.ResolveContent(ctx, knownFilename)
		require.NoError(t, err)
		assert.Equal(t, knownFilename, doc.Filename)
		assert.Equal(t, "Error extracting content: pdf parsing panicked: bad xref", content)
	})

	t.Run("artifact read failure other than not-found is internal", func(t *testing.T) {
		svc := newTestContentService(&fakeArtifacts{err: errors.New("disk gone")}, &fakeExtractor{})

		_, _, err := svc.ResolveContent(ctx, knownFilename)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})
}
