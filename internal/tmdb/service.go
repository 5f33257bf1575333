package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// Service resolves a free-form query against the external metadata API.
// Resolution never surfaces transport or decode errors to the caller: every
// failure is logged and folded into domain.ErrNotFound so one bad lookup
// cannot abort a batch.
type Service interface {
	// Resolve returns the full detail record for a query. A query consisting
	// only of digits is treated as an external identifier and fetched
	// directly; anything else goes through title search. A year above zero
	// restricts search matches to candidates released in that year.
	Resolve(ctx context.Context, query string, year int) (*domain.FilmDetail, error)
}

type service struct {
	log    zerolog.Logger
	config *domain.Config
	client *http.Client
}

func NewService(log zerolog.Logger, config *domain.Config) Service {
	return &service{
		log:    log.With().Str("module", "tmdb").Logger(),
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *service) Resolve(ctx context.Context, query string, year int) (*domain.FilmDetail, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrNotFound
	}

	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		return s.detail(ctx, id)
	}

	id, err := s.search(ctx, query, year)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, id)
}

// search runs a title search and picks a candidate: with a year given, the
// first result released in that year; without one, the first result.
func (s *service) search(ctx context.Context, title string, year int) (int64, error) {
	u, err := url.Parse(s.config.TmdbBaseURL + "/search/movie")
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse base url")
	}

	q := u.Query()
	q.Add("query", title)
	q.Add("language", "en-US")
	q.Add("page", "1")
	q.Add("include_adult", "true")
	if year > 0 {
		q.Add("year", strconv.Itoa(year))
	}
	u.RawQuery = q.Encode()

	body, err := s.get(ctx, u.String())
	if err != nil {
		s.log.Warn().Err(err).Str("title", title).Msg("search failed")
		return 0, domain.ErrNotFound
	}

	resp := &domain.TMDBSearchResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		s.log.Warn().Err(err).Str("title", title).Msg("failed to unmarshal search response")
		return 0, domain.ErrNotFound
	}

	if len(resp.Results) == 0 {
		s.log.Debug().Str("title", title).Msg("no search results")
		return 0, domain.ErrNotFound
	}

	if year > 0 {
		for _, result := range resp.Results {
			if releaseYear(result.ReleaseDate) == year {
				s.log.Debug().Str("title", title).Int64("tmdb_id", result.ID).Msg("matched search result on year")
				return result.ID, nil
			}
		}
		s.log.Warn().
			Str("title", title).
			Int("year", year).
			Int("total_results", resp.TotalResults).
			Msg("no search result released in the requested year")
		return 0, domain.ErrNotFound
	}

	s.log.Debug().Str("title", title).Int64("tmdb_id", resp.Results[0].ID).Msg("matched first search result")
	return resp.Results[0].ID, nil
}

// detail fetches the full record with credits appended.
func (s *service) detail(ctx context.Context, id int64) (*domain.FilmDetail, error) {
	u := fmt.Sprintf("%s/movie/%d?append_to_response=credits", s.config.TmdbBaseURL, id)

	body, err := s.get(ctx, u)
	if err != nil {
		s.log.Warn().Err(err).Int64("tmdb_id", id).Msg("detail lookup failed")
		return nil, domain.ErrNotFound
	}

	detail := &domain.FilmDetail{}
	if err := json.Unmarshal(body, detail); err != nil {
		s.log.Warn().Err(err).Int64("tmdb_id", id).Msg("failed to unmarshal detail response")
		return nil, domain.ErrNotFound
	}

	return detail, nil
}

func (s *service) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+s.config.TmdbApiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	return body, nil
}

func releaseYear(d string) int {
	if len(d) < 4 {
		return 0
	}
	y, err := strconv.Atoi(d[:4])
	if err != nil {
		return 0
	}
	return y
}
