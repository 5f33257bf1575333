package importer

import (
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
	"github.com/oswinp/curiodb/internal/tmdb"
	"github.com/oswinp/curiodb/internal/validate"
)

// Service runs import batches against the film catalog. Entries are processed
// strictly in input order, one at a time, with a fixed delay after every entry
// that reached the external API. A per-entry failure never aborts the batch.
type Service interface {
	// ImportBatch resolves each free-text title or numeric external id and
	// creates the films that do not exist yet. Blank entries are dropped
	// without a report line.
	ImportBatch(ctx context.Context, entries []string) ([]domain.ImportResult, error)

	// ImportRatings reads Letterboxd-export CSV rows (Name, Year, Rating on a
	// 5-point scale) and reconciles them by title, creating missing films
	// with seen set and updating ratings that changed.
	ImportRatings(ctx context.Context, r io.Reader) ([]domain.ImportResult, error)
}

type service struct {
	log        zerolog.Logger
	config     *domain.Config
	filmRepo   domain.FilmRepository
	metadata   tmdb.Service
	mapper     *Mapper
	reconciler *Reconciler
	validator  *validate.Validator
	reportRepo domain.ReportRepository
	notifier   domain.NotificationService
}

func NewService(log zerolog.Logger, config *domain.Config, filmRepo domain.FilmRepository, metadata tmdb.Service, reportRepo domain.ReportRepository, notifier domain.NotificationService) Service {
	return &service{
		log:        log.With().Str("module", "importer").Logger(),
		config:     config,
		filmRepo:   filmRepo,
		metadata:   metadata,
		mapper:     NewMapper(log, config),
		reconciler: NewReconciler(log, filmRepo),
		validator:  validate.New(),
		reportRepo: reportRepo,
		notifier:   notifier,
	}
}

func (s *service) ImportBatch(ctx context.Context, entries []string) ([]domain.ImportResult, error) {
	results := []domain.ImportResult{}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		results = append(results, s.importEntry(ctx, entry))
		s.delay()
	}

	s.finish(ctx, results)
	return results, nil
}

func (s *service) importEntry(ctx context.Context, entry string) domain.ImportResult {
	detail, err := s.metadata.Resolve(ctx, entry, 0)
	if err != nil {
		s.log.Debug().Str("entry", entry).Msg("entry did not resolve")
		return domain.ImportResult{Item: entry, Status: domain.StatusNotFound}
	}

	film := s.mapper.Map(detail, nil)
	if film.Title == "" {
		film.Title = entry
	}

	action, err := s.reconciler.Reconcile(ctx, domain.DedupByExternalID, detail.ID, film.Title, film, nil)
	if err != nil {
		s.log.Error().Err(err).Str("entry", entry).Msg("reconcile failed")
		return databaseFailure(entry, err)
	}

	if action.Type == domain.ActionSkip {
		return domain.ImportResult{Item: entry, Status: domain.StatusDuplicate}
	}

	return s.create(ctx, entry, action.Film)
}

func (s *service) ImportRatings(ctx context.Context, r io.Reader) ([]domain.ImportResult, error) {
	items, err := parseRatingCSV(r)
	if err != nil {
		return nil, err
	}

	results := []domain.ImportResult{}

	for _, item := range items {
		if item.malformed != nil {
			results = append(results, *item.malformed)
			continue
		}
		results = append(results, s.importRating(ctx, item.row))
	}

	s.finish(ctx, results)
	return results, nil
}

func (s *service) importRating(ctx context.Context, row domain.RatingRow) domain.ImportResult {
	action, err := s.reconciler.Reconcile(ctx, domain.DedupByTitle, 0, row.Title, nil, row.Rating)
	if err != nil {
		s.log.Error().Err(err).Str("title", row.Title).Msg("reconcile failed")
		return databaseFailure(row.Title, err)
	}

	switch action.Type {
	case domain.ActionSkip:
		return domain.ImportResult{Item: row.Title, Status: domain.StatusDuplicate}

	case domain.ActionUpdateRating:
		if err := s.filmRepo.UpdateRating(ctx, action.FilmID, action.Rating); err != nil {
			s.log.Error().Err(err).Str("title", row.Title).Msg("rating update failed")
			return databaseFailure(row.Title, err)
		}
		s.log.Info().Str("title", row.Title).Float64("rating", action.Rating).Msg("rating updated")
		return domain.ImportResult{Item: row.Title, Status: domain.StatusUpdated}
	}

	// No local match: resolve externally, year-filtered when the row has one.
	detail, err := s.metadata.Resolve(ctx, row.Title, row.Year)
	s.delay()
	if err != nil {
		s.log.Debug().Str("title", row.Title).Msg("row did not resolve")
		return domain.ImportResult{Item: row.Title, Status: domain.StatusNotFound}
	}

	film := s.mapper.Map(detail, row.Rating)
	if film.Title == "" {
		film.Title = row.Title
	}
	film.Seen = true

	return s.create(ctx, row.Title, film)
}

func (s *service) create(ctx context.Context, item string, film *domain.Film) domain.ImportResult {
	if verr := s.validator.Struct(film); verr != nil {
		s.log.Warn().Str("item", item).Str("detail", verr.Error()).Msg("mapped film failed validation")
		return domain.ImportResult{
			Item:   item,
			Status: domain.StatusValidationFailed,
			Errors: verr.Fields,
		}
	}

	if err := s.filmRepo.Store(ctx, film); err != nil {
		s.log.Error().Err(err).Str("item", item).Msg("store failed")
		return databaseFailure(item, err)
	}

	s.log.Info().Str("title", film.Title).Int64("tmdb_id", film.TmdbID).Msg("film imported")
	return domain.ImportResult{Item: item, Status: domain.StatusImported}
}

// finish logs the batch summary, writes the unresolved sidecar report and
// sends the optional notification.
func (s *service) finish(ctx context.Context, results []domain.ImportResult) {
	summary := domain.Summarize(results)

	s.log.Info().
		Int("total", summary.Total).
		Int("imported", summary.Imported).
		Int("updated", summary.Updated).
		Int("duplicates", summary.Duplicates).
		Int("not_found", summary.NotFound).
		Int("validation_failed", summary.ValidationFailed).
		Int("malformed_rows", summary.MalformedRows).
		Msg("import batch complete")

	if err := s.storeUnresolved(ctx, results); err != nil {
		s.log.Warn().Err(err).Msg("failed to write unresolved report")
	}

	if s.notifier != nil {
		if err := s.notifier.SendImportSummary(ctx, summary); err != nil {
			s.log.Warn().Err(err).Msg("failed to send import notification")
		}
	}
}

func (s *service) storeUnresolved(ctx context.Context, results []domain.ImportResult) error {
	report := &domain.UnresolvedReport{}
	for _, r := range results {
		if r.Status == domain.StatusNotFound || r.Status == domain.StatusMalformedRow {
			report.Entries = append(report.Entries, domain.UnresolvedEntry{
				Item:   r.Item,
				Status: string(r.Status),
			})
		}
	}

	if len(report.Entries) == 0 {
		return nil
	}

	path := filepath.Join(s.config.DataDir, "unresolved.yaml")
	return s.reportRepo.StoreUnresolved(ctx, path, report)
}

func (s *service) delay() {
	if s.config.ImportDelay > 0 {
		time.Sleep(s.config.ImportDelay)
	}
}

func databaseFailure(item string, err error) domain.ImportResult {
	return domain.ImportResult{
		Item:   item,
		Status: domain.StatusValidationFailed,
		Errors: map[string]string{"database": err.Error()},
	}
}

// ratingItem is one CSV row: either a parsed rating row or a row already
// reported as malformed. Items keep the input order of the file.
type ratingItem struct {
	row       domain.RatingRow
	malformed *domain.ImportResult
}

// parseRatingCSV reads a Letterboxd export. The header row names the columns;
// Name, Year and Rating are used, anything else is ignored. Rows with a blank
// name are dropped silently, rows with an unparseable year or rating become
// malformed items in place.
func parseRatingCSV(r io.Reader) ([]ratingItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}

	nameIdx, yearIdx, ratingIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Name":
			nameIdx = i
		case "Year":
			yearIdx = i
		case "Rating":
			ratingIdx = i
		}
	}
	if nameIdx == -1 {
		return nil, errors.New("csv is missing the Name column")
	}

	items := []ratingItem{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read csv row")
		}

		title := strings.TrimSpace(field(record, nameIdx))
		if title == "" {
			continue
		}

		row := domain.RatingRow{Title: title}

		if y := strings.TrimSpace(field(record, yearIdx)); y != "" {
			year, err := strconv.Atoi(y)
			if err != nil {
				items = append(items, ratingItem{malformed: &domain.ImportResult{
					Item:   title,
					Status: domain.StatusMalformedRow,
					Errors: map[string]string{"year": "not a number: " + y},
				}})
				continue
			}
			row.Year = year
		}

		if rt := strings.TrimSpace(field(record, ratingIdx)); rt != "" {
			rating, err := strconv.ParseFloat(rt, 64)
			if err != nil {
				items = append(items, ratingItem{malformed: &domain.ImportResult{
					Item:   title,
					Status: domain.StatusMalformedRow,
					Errors: map[string]string{"rating": "not a number: " + rt},
				}})
				continue
			}
			rescaled := rating * 2
			row.Rating = &rescaled
		}

		items = append(items, ratingItem{row: row})
	}

	return items, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
