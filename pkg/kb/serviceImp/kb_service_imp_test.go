package serviceImp

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"petrolog/entities"
	"petrolog/pkg/kb/repositoryImp"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.KBDocument{}, &entities.KBChunk{}))
	return db
}

func newTestSvc(t *testing.T) *Svc {
	return New(repositoryImp.New(openTestDB(t)), nil)
}

func TestIngestChunksLongText(t *testing.T) {
	svc := newTestSvc(t)

	para := strings.Repeat("Archie saturation in clean sandstone. ", 20) + "\n"
	doc, n, err := svc.Ingest("Archie notes", "methods", strings.Repeat(para, 5), "")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Greater(t, n, 1, "text past the chunk budget must split")
}

func TestIngestEmptyTextCreatesDocOnly(t *testing.T) {
	svc := newTestSvc(t)

	doc, n, err := svc.Ingest("stub", "", "   \n ", "")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Zero(t, n)
}

func TestKeywordSearchRanksByTermHits(t *testing.T) {
	svc := newTestSvc(t)
	_, _, err := svc.Ingest("porosity", "", "Density porosity assumes a sandstone matrix.", "")
	require.NoError(t, err)
	_, _, err = svc.Ingest("saturation", "", "Archie water saturation for clean sandstone reservoirs.", "")
	require.NoError(t, err)

	hits, err := svc.Search("archie saturation", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Contains(t, strings.ToLower(hits[0].Text), "archie",
		"the chunk matching both terms must rank first")
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	svc := newTestSvc(t)
	_, _, err := svc.Ingest("porosity", "", "Density porosity assumes a sandstone matrix.", "")
	require.NoError(t, err)

	hits, err := svc.Search("permafrost", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchBlankQuery(t *testing.T) {
	svc := newTestSvc(t)
	hits, err := svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestChunkTextKeepsParagraphBoundaries(t *testing.T) {
	text := strings.Repeat("alpha beta gamma\n", 200)
	parts := chunkText(text, 100)
	require.NotEmpty(t, parts)
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 120, "chunks stop at the first newline past the budget")
	}
}
