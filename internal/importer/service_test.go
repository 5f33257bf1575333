package importer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oswinp/curiodb/internal/domain"
	"github.com/oswinp/curiodb/internal/repository"
)

// stubMetadata fakes the external API with a fixed query → detail table.
type stubMetadata struct {
	details map[string]*domain.FilmDetail
	calls   int
}

func (s *stubMetadata) Resolve(ctx context.Context, query string, year int) (*domain.FilmDetail, error) {
	s.calls++
	if detail, ok := s.details[query]; ok {
		return detail, nil
	}
	return nil, domain.ErrNotFound
}

func testService(t *testing.T, metadata *stubMetadata) (Service, domain.FilmRepository, string) {
	t.Helper()

	dir := t.TempDir()
	repo := testFilmRepo(t)
	cfg := &domain.Config{DataDir: dir}

	svc := NewService(zerolog.Nop(), cfg, repo, metadata, repository.NewFileRepository(zerolog.Nop()), nil)
	return svc, repo, dir
}

func TestImportBatchScenario(t *testing.T) {
	metadata := &stubMetadata{details: map[string]*domain.FilmDetail{
		"Amélie": {ID: 194, Title: "Amélie", ReleaseDate: "2001-04-25"},
	}}
	svc, repo, _ := testService(t, metadata)

	results, err := svc.ImportBatch(context.Background(), []string{"Amélie", "999999999999", "", "Amélie"})
	require.NoError(t, err)

	// blank entry is dropped, the rest are reported in order
	require.Len(t, results, 3)
	assert.Equal(t, domain.ImportResult{Item: "Amélie", Status: domain.StatusImported}, results[0])
	assert.Equal(t, domain.ImportResult{Item: "999999999999", Status: domain.StatusNotFound}, results[1])
	assert.Equal(t, domain.ImportResult{Item: "Amélie", Status: domain.StatusDuplicate}, results[2])

	film, err := repo.FindByTmdbID(context.Background(), 194)
	require.NoError(t, err)
	assert.Equal(t, "Amélie", film.Title)
	assert.False(t, film.Seen)
}

func TestImportBatchTitleFallsBackToEntry(t *testing.T) {
	metadata := &stubMetadata{details: map[string]*domain.FilmDetail{
		"some obscure film": {ID: 42},
	}}
	svc, repo, _ := testService(t, metadata)

	results, err := svc.ImportBatch(context.Background(), []string{"some obscure film"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusImported, results[0].Status)

	film, err := repo.FindByTmdbID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "some obscure film", film.Title)
}

func TestImportBatchValidationFailure(t *testing.T) {
	metadata := &stubMetadata{details: map[string]*domain.FilmDetail{
		"Broken": {ID: 7, Title: "Broken", ReleaseDate: "not-a-date"},
	}}
	svc, _, _ := testService(t, metadata)

	results, err := svc.ImportBatch(context.Background(), []string{"Broken"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusValidationFailed, results[0].Status)
	assert.Contains(t, results[0].Errors, "release_date")
}

func TestImportBatchWritesUnresolvedReport(t *testing.T) {
	metadata := &stubMetadata{}
	svc, _, dir := testService(t, metadata)

	_, err := svc.ImportBatch(context.Background(), []string{"Nothing Here"})
	require.NoError(t, err)

	fileRepo := repository.NewFileRepository(zerolog.Nop())
	report, err := fileRepo.GetUnresolved(context.Background(), filepath.Join(dir, "unresolved.yaml"))
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "Nothing Here", report.Entries[0].Item)
	assert.Equal(t, "not found", report.Entries[0].Status)
}

const parasiteCSV = `Date,Name,Year,Letterboxd URI,Rating
2020-01-05,Parasite,2019,https://boxd.it/x,4.5
`

func TestImportRatingsCreatesWithRescaledRating(t *testing.T) {
	metadata := &stubMetadata{details: map[string]*domain.FilmDetail{
		"Parasite": {ID: 496243, Title: "Parasite", ReleaseDate: "2019-05-30"},
	}}
	svc, repo, _ := testService(t, metadata)

	results, err := svc.ImportRatings(context.Background(), strings.NewReader(parasiteCSV))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusImported, results[0].Status)

	film, err := repo.FindByTitle(context.Background(), "Parasite")
	require.NoError(t, err)
	require.NotNil(t, film.Rating)
	assert.Equal(t, 9.0, *film.Rating)
	assert.True(t, film.Seen)
}

func TestImportRatingsIsIdempotent(t *testing.T) {
	metadata := &stubMetadata{details: map[string]*domain.FilmDetail{
		"Parasite": {ID: 496243, Title: "Parasite", ReleaseDate: "2019-05-30"},
	}}
	svc, repo, _ := testService(t, metadata)

	_, err := svc.ImportRatings(context.Background(), strings.NewReader(parasiteCSV))
	require.NoError(t, err)
	callsAfterFirst := metadata.calls

	results, err := svc.ImportRatings(context.Background(), strings.NewReader(parasiteCSV))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusDuplicate, results[0].Status)

	// second run resolved nothing externally and wrote nothing
	assert.Equal(t, callsAfterFirst, metadata.calls)

	films, err := repo.List(context.Background(), domain.FilmFilter{})
	require.NoError(t, err)
	assert.Len(t, films, 1)
}

func TestImportRatingsUpdatesChangedRating(t *testing.T) {
	metadata := &stubMetadata{}
	svc, repo, _ := testService(t, metadata)

	old := 7.0
	existing := domain.Film{Title: "Parasite", Rating: &old}
	require.NoError(t, repo.Store(context.Background(), &existing))

	results, err := svc.ImportRatings(context.Background(), strings.NewReader(parasiteCSV))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusUpdated, results[0].Status)

	film, err := repo.Get(context.Background(), existing.ID)
	require.NoError(t, err)
	require.NotNil(t, film.Rating)
	assert.Equal(t, 9.0, *film.Rating)

	// only the rating changed, no second record
	assert.Equal(t, 0, metadata.calls)
}

func TestImportRatingsMalformedRows(t *testing.T) {
	csv := `Name,Year,Rating
Parasite,MMXIX,4.5
Amélie,2001,five stars
,,
`
	metadata := &stubMetadata{}
	svc, _, _ := testService(t, metadata)

	results, err := svc.ImportRatings(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	// blank row dropped, both bad rows reported, batch not aborted
	require.Len(t, results, 2)
	assert.Equal(t, domain.StatusMalformedRow, results[0].Status)
	assert.Contains(t, results[0].Errors, "year")
	assert.Equal(t, domain.StatusMalformedRow, results[1].Status)
	assert.Contains(t, results[1].Errors, "rating")
}

func TestImportRatingsKeepsRowOrder(t *testing.T) {
	csv := `Name,Year,Rating
Parasite,2019,4.5
Amélie,MMXIX,4.0
Solaris,1972,3.5
`
	metadata := &stubMetadata{details: map[string]*domain.FilmDetail{
		"Parasite": {ID: 496243, Title: "Parasite", ReleaseDate: "2019-05-30"},
		"Solaris":  {ID: 200, Title: "Solaris", ReleaseDate: "1972-05-05"},
	}}
	svc, _, _ := testService(t, metadata)

	results, err := svc.ImportRatings(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	// a malformed row stays where it appeared in the file
	require.Len(t, results, 3)
	assert.Equal(t, "Parasite", results[0].Item)
	assert.Equal(t, domain.StatusImported, results[0].Status)
	assert.Equal(t, "Amélie", results[1].Item)
	assert.Equal(t, domain.StatusMalformedRow, results[1].Status)
	assert.Equal(t, "Solaris", results[2].Item)
	assert.Equal(t, domain.StatusImported, results[2].Status)
}

func TestImportRatingsMissingNameColumn(t *testing.T) {
	metadata := &stubMetadata{}
	svc, _, _ := testService(t, metadata)

	_, err := svc.ImportRatings(context.Background(), strings.NewReader("Title,Rating\nParasite,4.5\n"))
	assert.Error(t, err)
}
