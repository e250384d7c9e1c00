package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"movie-bot-backend/models"
)

// MovieFetcher is the slice of the TMDB client the movie service needs.
type MovieFetcher interface {
	SearchMovie(ctx context.Context, title, year string) (*models.MovieRecord, error)
	GetMovieByID(ctx context.Context, movieID int) (*models.MovieRecord, error)
	TrendingMovies(ctx context.Context) ([]*models.MovieRecord, error)
	PopularMovies(ctx context.Context) ([]*models.MovieRecord, error)
	SearchRaw(ctx context.Context, query string) ([]models.TMDBSearchResult, error)
}

// MovieService answers the movie lookups behind the bot commands. Fetch
// failures are logged and collapse to "nothing found" for the caller; a
// user gets the same reply whether TMDB was down or simply had no match.
type MovieService struct {
	tmdb MovieFetcher
	log  zerolog.Logger
}

func NewMovieService(tmdb MovieFetcher, log zerolog.Logger) *MovieService {
	return &MovieService{
		tmdb: tmdb,
		log:  log.With().Str("component", "movie_service").Logger(),
	}
}

// ParseSearchQuery splits a /search argument into title and optional year.
// Only a trailing four-digit token counts as a year filter; anything else
// stays part of the title.
func ParseSearchQuery(query string) (title, year string) {
	title = strings.TrimSpace(query)

	idx := strings.LastIndex(title, " ")
	if idx < 0 {
		return title, ""
	}
	last := title[idx+1:]
	if !isYearToken(last) {
		return title, ""
	}
	return strings.TrimSpace(title[:idx]), last
}

func isYearToken(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Search resolves a free-text query, honoring a trailing year filter, to a
// full movie record. It returns nil when nothing matched or the lookup
// failed.
func (s *MovieService) Search(ctx context.Context, query string) *models.MovieRecord {
	title, year := ParseSearchQuery(query)

	rec, err := s.tmdb.SearchMovie(ctx, title, year)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("Movie search failed")
		return nil
	}
	return rec
}

// GetByID resolves a TMDB movie id to a full record, nil when unknown or
// the lookup failed.
func (s *MovieService) GetByID(ctx context.Context, movieID int) *models.MovieRecord {
	rec, err := s.tmdb.GetMovieByID(ctx, movieID)
	if err != nil {
		s.log.Error().Err(err).Int("movie_id", movieID).Msg("Movie lookup failed")
		return nil
	}
	return rec
}

// Trending returns this week's trending movies. Entries that failed to
// resolve are nil; the formatter skips them.
func (s *MovieService) Trending(ctx context.Context) []*models.MovieRecord {
	records, err := s.tmdb.TrendingMovies(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Trending fetch failed")
		return nil
	}
	return records
}

// Popular returns the current popular movies, nil entries included for
// failed fetches.
func (s *MovieService) Popular(ctx context.Context) []*models.MovieRecord {
	records, err := s.tmdb.PopularMovies(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Popular fetch failed")
		return nil
	}
	return records
}

// InlineResults runs one raw search for the inline-query path and returns
// at most five hits.
func (s *MovieService) InlineResults(ctx context.Context, query string) []models.TMDBSearchResult {
	results, err := s.tmdb.SearchRaw(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("Inline search failed")
		return nil
	}
	if len(results) > 5 {
		results = results[:5]
	}
	return results
}
