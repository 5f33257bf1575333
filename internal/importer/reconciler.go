package importer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// Reconciler decides what to do with one incoming entry given any existing
// local match. Both import entry points go through here; they differ only in
// the dedup mode.
type Reconciler struct {
	log      zerolog.Logger
	filmRepo domain.FilmRepository
}

func NewReconciler(log zerolog.Logger, filmRepo domain.FilmRepository) *Reconciler {
	return &Reconciler{
		log:      log.With().Str("module", "reconciler").Logger(),
		filmRepo: filmRepo,
	}
}

// Reconcile looks up an existing film under the given mode and returns the
// action to take. In external-ID mode an existing match is always a skip.
// In title mode an existing match has its rating updated when the supplied
// rating differs from the stored one; candidate may be nil since title mode
// never needs the mapped record to decide.
func (r *Reconciler) Reconcile(ctx context.Context, mode domain.DedupMode, tmdbID int64, title string, candidate *domain.Film, rating *float64) (domain.Action, error) {
	switch mode {
	case domain.DedupByExternalID:
		existing, err := r.filmRepo.FindByTmdbID(ctx, tmdbID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Action{Type: domain.ActionCreate, Film: candidate}, nil
			}
			return domain.Action{}, errors.Wrap(err, "failed to look up film by external id")
		}

		r.log.Debug().Int64("tmdb_id", tmdbID).Int64("film_id", existing.ID).Msg("existing film with same external id")
		return domain.Action{Type: domain.ActionSkip, Reason: "duplicate"}, nil

	case domain.DedupByTitle:
		existing, err := r.filmRepo.FindByTitle(ctx, title)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Action{Type: domain.ActionCreate, Film: candidate}, nil
			}
			return domain.Action{}, errors.Wrap(err, "failed to look up film by title")
		}

		if rating != nil && (existing.Rating == nil || *existing.Rating != *rating) {
			return domain.Action{
				Type:   domain.ActionUpdateRating,
				FilmID: existing.ID,
				Rating: *rating,
			}, nil
		}

		return domain.Action{Type: domain.ActionSkip, Reason: "already up to date"}, nil
	}

	return domain.Action{}, errors.Errorf("unknown dedup mode %d", mode)
}
