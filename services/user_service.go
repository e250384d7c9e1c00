package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"movie-bot-backend/models"
)

// Storage interfaces cover exactly the repository surface the service
// uses, so tests can swap in fakes without a running MongoDB.

type UserStore interface {
	Upsert(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
	AllIDs(ctx context.Context) ([]int64, error)
}

type SearchStore interface {
	Insert(ctx context.Context, entry *models.SearchLog) error
	Count(ctx context.Context) (int64, error)
	TopMovies(ctx context.Context, limit int64) ([]models.SearchStat, error)
}

type FavoriteStore interface {
	Exists(ctx context.Context, userID int64, movieID int) (bool, error)
	Add(ctx context.Context, fav *models.Favorite) error
	Remove(ctx context.Context, userID int64, movieID int) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

type AdminStore interface {
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, ids []int64) error
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// topMoviesLimit is how many rows the /stats top list holds.
const topMoviesLimit = 10

// UserService owns everything user-scoped: profiles, search history,
// favorites and the admin set.
type UserService struct {
	users     UserStore
	searches  SearchStore
	favorites FavoriteStore
	admins    AdminStore
	allowList map[int64]bool
	log       zerolog.Logger
}

func NewUserService(users UserStore, searches SearchStore, favorites FavoriteStore, admins AdminStore, adminIDs []int64, log zerolog.Logger) *UserService {
	allowList := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		allowList[id] = true
	}
	return &UserService{
		users:     users,
		searches:  searches,
		favorites: favorites,
		admins:    admins,
		allowList: allowList,
		log:       log.With().Str("component", "user_service").Logger(),
	}
}

// EnsureUser records or refreshes the user profile. Every inbound
// interaction calls this; failures are logged and swallowed so a storage
// hiccup never blocks a reply.
func (s *UserService) EnsureUser(ctx context.Context, user *models.User) {
	if err := s.users.Upsert(ctx, user); err != nil {
		s.log.Error().Err(err).Int64("user_id", user.UserID).Msg("Failed to upsert user")
	}
}

// LogSearch appends one search history entry. MovieID is nil when the
// query resolved to nothing.
func (s *UserService) LogSearch(ctx context.Context, userID int64, query string, movieID *int) {
	entry := &models.SearchLog{
		UserID:     userID,
		Query:      query,
		MovieID:    movieID,
		SearchDate: time.Now(),
	}
	if err := s.searches.Insert(ctx, entry); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("Failed to log search")
	}
}

// AddFavorite saves a movie for the user. It reports false when the movie
// was already saved, which the caller turns into an "already in favorites"
// alert.
func (s *UserService) AddFavorite(ctx context.Context, userID int64, movieID int, title string) (bool, error) {
	exists, err := s.favorites.Exists(ctx, userID, movieID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	fav := &models.Favorite{
		UserID:     userID,
		MovieID:    movieID,
		MovieTitle: title,
		AddDate:    time.Now(),
	}
	if err := s.favorites.Add(ctx, fav); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFavorite deletes a saved movie, reporting false when it was not in
// the user's favorites to begin with.
func (s *UserService) RemoveFavorite(ctx context.Context, userID int64, movieID int) (bool, error) {
	return s.favorites.Remove(ctx, userID, movieID)
}

// Favorites returns the user's saved movies, newest first.
func (s *UserService) Favorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// IsAdmin reports whether the user may run admin commands: either present
// in the admins collection or on the static allow-list. Storage errors are
// logged and deny.
func (s *UserService) IsAdmin(ctx context.Context, userID int64) bool {
	if s.allowList[userID] {
		return true
	}
	ok, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("Admin lookup failed")
		return false
	}
	return ok
}

// SeedAdmins populates the admins collection from the allow-list, only
// when the collection is still empty.
func (s *UserService) SeedAdmins(ctx context.Context) error {
	if len(s.allowList) == 0 {
		return nil
	}
	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ids := make([]int64, 0, len(s.allowList))
	for id := range s.allowList {
		ids = append(ids, id)
	}
	s.log.Info().Int("admins", len(ids)).Msg("Seeding admin collection")
	return s.admins.Seed(ctx, ids)
}

// Stats assembles the admin statistics summary. Top-movie titles are not
// resolved here; the caller fills them in with detail lookups.
func (s *UserService) Stats(ctx context.Context) (*models.BotStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSearches, err := s.searches.Count(ctx)
	if err != nil {
		return nil, err
	}
	topMovies, err := s.searches.TopMovies(ctx, topMoviesLimit)
	if err != nil {
		return nil, err
	}

	return &models.BotStats{
		UserCount:     userCount,
		TotalSearches: totalSearches,
		TopMovies:     topMovies,
	}, nil
}

// AllUserIDs returns every known user id, for broadcast fan-out.
func (s *UserService) AllUserIDs(ctx context.Context) ([]int64, error) {
	return s.users.AllIDs(ctx)
}
