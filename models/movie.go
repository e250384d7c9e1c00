package models

import (
	"strconv"
	"strings"
)

const (
	posterBaseURL = "https://image.tmdb.org/t/p/original"
	thumbBaseURL  = "https://image.tmdb.org/t/p/w200"
	movieBaseURL  = "https://www.themoviedb.org/movie/"
)

// NotAvailable is the placeholder used for record fields that are missing
// or empty in the TMDB response.
const NotAvailable = "N/A"

// defaultOverview is used when TMDB has no overview text for a movie.
const defaultOverview = "No overview available."

// MovieRecord is the canonical, display-ready representation of one movie.
// It is built fresh from a TMDB detail response and never mutated afterwards.
type MovieRecord struct {
	ID              int                 `json:"id"`
	Title           string              `json:"title"`
	Year            string              `json:"year"`
	Runtime         string              `json:"runtime"`
	Genres          string              `json:"genres"`
	Language        string              `json:"language"`
	Rating          string              `json:"rating"`
	Overview        string              `json:"overview"`
	PosterURL       string              `json:"poster_url,omitempty"`
	TrailerURL      string              `json:"trailer_url,omitempty"`
	TMDBLink        string              `json:"tmdb_link"`
	Recommendations []RecommendationRef `json:"recommendations,omitempty"`
}

// RecommendationRef is a lightweight reference to a related movie.
type RecommendationRef struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster,omitempty"`
}

// MovieURL returns the public TMDB page URL for a movie id.
func MovieURL(id int) string {
	return movieBaseURL + strconv.Itoa(id)
}

// NewMovieRecord normalizes a raw TMDB detail response into a MovieRecord.
// It returns nil when the response carries no id, which callers treat as
// "movie not found". Missing or zero optional fields degrade to "N/A"
// style placeholders instead of failing the whole record.
func NewMovieRecord(d *TMDBMovieDetail) *MovieRecord {
	if d == nil || d.ID == 0 {
		return nil
	}

	rec := &MovieRecord{
		ID:       d.ID,
		Title:    d.Title,
		Year:     ReleaseYear(d.ReleaseDate),
		Runtime:  NotAvailable,
		Genres:   joinGenres(d.Genres),
		Language: NotAvailable,
		Rating:   FormatRating(d.VoteAverage),
		Overview: d.Overview,
		TMDBLink: MovieURL(d.ID),
	}

	if rec.Title == "" {
		rec.Title = NotAvailable
	}
	if rec.Overview == "" {
		rec.Overview = defaultOverview
	}
	if d.Runtime > 0 {
		rec.Runtime = strconv.Itoa(d.Runtime) + " min"
	}
	if d.OriginalLanguage != "" {
		rec.Language = strings.ToUpper(d.OriginalLanguage)
	}
	if d.PosterPath != "" {
		rec.PosterURL = posterBaseURL + d.PosterPath
	}
	rec.TrailerURL = trailerURL(d.Videos.Results)
	rec.Recommendations = newRecommendationRefs(d.Recommendations.Results)

	return rec
}

// ReleaseYear derives the display year from a TMDB release date string,
// which is the first four characters of the "YYYY-MM-DD" form. An empty
// date yields "N/A"; a shorter malformed date is kept as-is.
func ReleaseYear(date string) string {
	if date == "" {
		return NotAvailable
	}
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

// FormatRating renders the average vote with one decimal. A zero or absent
// vote is indistinguishable from "no rating" on the TMDB side and is shown
// as "N/A". Ties at the rounded digit follow strconv's round-to-even of the
// exact binary value.
func FormatRating(voteAverage float64) string {
	if voteAverage == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(voteAverage, 'f', 1, 64)
}

func joinGenres(genres []TMDBGenre) string {
	if len(genres) == 0 {
		return NotAvailable
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// trailerURL picks the first YouTube trailer in API order, or "".
func trailerURL(videos []TMDBVideo) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}

// newRecommendationRefs keeps the first five related movies, preserving the
// API order. Entries are not normalized beyond the year derivation.
func newRecommendationRefs(results []TMDBSearchResult) []RecommendationRef {
	if len(results) == 0 {
		return nil
	}
	if len(results) > 5 {
		results = results[:5]
	}
	refs := make([]RecommendationRef, 0, len(results))
	for _, r := range results {
		ref := RecommendationRef{
			ID:    r.ID,
			Title: r.Title,
			Year:  ReleaseYear(r.ReleaseDate),
		}
		if r.PosterPath != "" {
			ref.Poster = thumbBaseURL + r.PosterPath
		}
		refs = append(refs, ref)
	}
	return refs
}
