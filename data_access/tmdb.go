package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"movie-bot-backend/models"
)

const listLimit = 5

// TMDBClient talks to The Movie Database API. Lookups that find nothing
// return (nil, nil); transport failures that survive the retry budget come
// back as errors, which callers are expected to treat the same as "no
// data".
type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	retry   RetryPolicy
	log     zerolog.Logger
}

func NewTMDBClient(apiKey, baseURL string, log zerolog.Logger) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		retry: DefaultRetryPolicy(),
		log:   log.With().Str("component", "tmdb").Logger(),
	}
}

// SearchMovie looks a movie up by title, optionally narrowed to a release
// year, and resolves the first hit to a full record. One search costs two
// round trips: the title lookup and the detail fetch for its first result.
func (c *TMDBClient) SearchMovie(ctx context.Context, title, year string) (*models.MovieRecord, error) {
	c.log.Info().Str("title", title).Str("year", year).Msg("Searching for movie")

	params := url.Values{}
	params.Set("query", title)
	if year != "" {
		params.Set("year", year)
	}

	var page models.TMDBSearchResponse
	if err := c.getJSON(ctx, "/search/movie", params, &page); err != nil {
		return nil, err
	}

	if len(page.Results) == 0 || page.Results[0].ID == 0 {
		c.log.Warn().Str("title", title).Msg("No results found for movie")
		return nil, nil
	}

	return c.GetMovieByID(ctx, page.Results[0].ID)
}

// GetMovieByID fetches full details for one movie, with trailer videos and
// related recommendations appended in the same response.
func (c *TMDBClient) GetMovieByID(ctx context.Context, movieID int) (*models.MovieRecord, error) {
	c.log.Info().Int("movie_id", movieID).Msg("Fetching movie details")

	params := url.Values{}
	params.Set("append_to_response", "videos,recommendations")

	var detail models.TMDBMovieDetail
	if err := c.getJSON(ctx, "/movie/"+strconv.Itoa(movieID), params, &detail); err != nil {
		return nil, err
	}

	rec := models.NewMovieRecord(&detail)
	if rec == nil {
		c.log.Warn().Int("movie_id", movieID).Msg("No details found for movie id")
		return nil, nil
	}
	return rec, nil
}

// TrendingMovies returns this week's trending movies, each resolved to a
// full record.
func (c *TMDBClient) TrendingMovies(ctx context.Context) ([]*models.MovieRecord, error) {
	return c.listMovies(ctx, "/trending/movie/week")
}

// PopularMovies returns the current popular movies, each resolved to a
// full record.
func (c *TMDBClient) PopularMovies(ctx context.Context) ([]*models.MovieRecord, error) {
	return c.listMovies(ctx, "/movie/popular")
}

// listMovies fetches a list endpoint and re-fetches the first five entries
// by id, one at a time, so every record carries the full detail fields.
// Entries whose detail fetch fails are kept as nil placeholders; the
// renderer drops them.
func (c *TMDBClient) listMovies(ctx context.Context, path string) ([]*models.MovieRecord, error) {
	var page models.TMDBSearchResponse
	if err := c.getJSON(ctx, path, nil, &page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, nil
	}

	results := page.Results
	if len(results) > listLimit {
		results = results[:listLimit]
	}

	records := make([]*models.MovieRecord, 0, len(results))
	for _, r := range results {
		rec, err := c.GetMovieByID(ctx, r.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn().Err(err).Int("movie_id", r.ID).Msg("Skipping list entry")
			rec = nil
		}
		records = append(records, rec)
	}
	return records, nil
}

// SearchRaw runs a single title search round trip and returns the raw
// results. The inline-query path uses it to answer quickly without per-hit
// detail fetches.
func (c *TMDBClient) SearchRaw(ctx context.Context, query string) ([]models.TMDBSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)

	var page models.TMDBSearchResponse
	if err := c.getJSON(ctx, "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// getJSON issues one authenticated GET under the retry policy and decodes
// the body into dest. Timeouts, connection failures and non-200 statuses
// all count as retriable failures.
func (c *TMDBClient) getJSON(ctx context.Context, path string, params url.Values, dest interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	return c.retry.Do(ctx, c.log, "GET "+path, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("tmdb request build: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("tmdb request %s: %w", path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("tmdb: HTTP %d for %s", resp.StatusCode, path)
		}

		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("tmdb decode %s: %w", path, err)
		}
		return nil
	})
}
