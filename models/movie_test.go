package models

import (
	"strconv"
	"testing"
)

func TestNewMovieRecordRejectsMissingID(t *testing.T) {
	if rec := NewMovieRecord(nil); rec != nil {
		t.Errorf("NewMovieRecord(nil) = %+v, want nil", rec)
	}
	if rec := NewMovieRecord(&TMDBMovieDetail{Title: "Ghost"}); rec != nil {
		t.Errorf("NewMovieRecord without id = %+v, want nil", rec)
	}
}

func TestNewMovieRecordDefaults(t *testing.T) {
	rec := NewMovieRecord(&TMDBMovieDetail{ID: 550})
	if rec == nil {
		t.Fatal("NewMovieRecord returned nil for a valid id")
	}

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Title", rec.Title, NotAvailable},
		{"Year", rec.Year, NotAvailable},
		{"Runtime", rec.Runtime, NotAvailable},
		{"Genres", rec.Genres, NotAvailable},
		{"Language", rec.Language, NotAvailable},
		{"Rating", rec.Rating, NotAvailable},
		{"Overview", rec.Overview, defaultOverview},
		{"PosterURL", rec.PosterURL, ""},
		{"TrailerURL", rec.TrailerURL, ""},
		{"TMDBLink", rec.TMDBLink, "https://www.themoviedb.org/movie/550"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if rec.Recommendations != nil {
		t.Errorf("Recommendations = %+v, want nil", rec.Recommendations)
	}
}

func TestNewMovieRecordPopulatedFields(t *testing.T) {
	rec := NewMovieRecord(&TMDBMovieDetail{
		ID:               27205,
		Title:            "Inception",
		ReleaseDate:      "2010-07-15",
		Runtime:          148,
		Genres:           []TMDBGenre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		OriginalLanguage: "en",
		VoteAverage:      8.4,
		Overview:         "A thief who steals corporate secrets.",
		PosterPath:       "/inception.jpg",
	})
	if rec == nil {
		t.Fatal("NewMovieRecord returned nil")
	}

	if rec.Year != "2010" {
		t.Errorf("Year = %q, want %q", rec.Year, "2010")
	}
	if rec.Runtime != "148 min" {
		t.Errorf("Runtime = %q, want %q", rec.Runtime, "148 min")
	}
	if rec.Genres != "Action, Science Fiction" {
		t.Errorf("Genres = %q", rec.Genres)
	}
	if rec.Language != "EN" {
		t.Errorf("Language = %q, want %q", rec.Language, "EN")
	}
	if rec.Rating != "8.4" {
		t.Errorf("Rating = %q, want %q", rec.Rating, "8.4")
	}
	if want := "https://image.tmdb.org/t/p/original/inception.jpg"; rec.PosterURL != want {
		t.Errorf("PosterURL = %q, want %q", rec.PosterURL, want)
	}
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"", NotAvailable},
		{"2009-12-18", "2009"},
		{"1999", "1999"},
		{"99", "99"},
	}
	for _, tt := range tests {
		if got := ReleaseYear(tt.date); got != tt.want {
			t.Errorf("ReleaseYear(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		vote float64
		want string
	}{
		{0, NotAvailable},
		{7.5, "7.5"},
		{7.049, "7.0"},
		{7.16, "7.2"},
		{10, "10.0"},
	}
	for _, tt := range tests {
		if got := FormatRating(tt.vote); got != tt.want {
			t.Errorf("FormatRating(%v) = %q, want %q", tt.vote, got, tt.want)
		}
	}
}

func TestTrailerPicksFirstYouTubeTrailer(t *testing.T) {
	rec := NewMovieRecord(&TMDBMovieDetail{
		ID: 1,
		Videos: TMDBVideos{Results: []TMDBVideo{
			{Key: "teaser", Site: "YouTube", Type: "Teaser"},
			{Key: "vimeo-trailer", Site: "Vimeo", Type: "Trailer"},
			{Key: "first", Site: "YouTube", Type: "Trailer"},
			{Key: "second", Site: "YouTube", Type: "Trailer"},
		}},
	})
	if want := "https://www.youtube.com/watch?v=first"; rec.TrailerURL != want {
		t.Errorf("TrailerURL = %q, want %q", rec.TrailerURL, want)
	}
}

func TestRecommendationsCappedAtFive(t *testing.T) {
	var results []TMDBSearchResult
	for i := 1; i <= 8; i++ {
		results = append(results, TMDBSearchResult{
			ID:          i,
			Title:       "Related " + strconv.Itoa(i),
			ReleaseDate: "2021-06-01",
		})
	}
	results[0].PosterPath = "/first.jpg"

	rec := NewMovieRecord(&TMDBMovieDetail{
		ID:              1,
		Recommendations: TMDBRecommendations{Results: results},
	})

	if len(rec.Recommendations) != 5 {
		t.Fatalf("len(Recommendations) = %d, want 5", len(rec.Recommendations))
	}
	for i, ref := range rec.Recommendations {
		if ref.ID != i+1 {
			t.Errorf("Recommendations[%d].ID = %d, want %d (API order preserved)", i, ref.ID, i+1)
		}
		if ref.Year != "2021" {
			t.Errorf("Recommendations[%d].Year = %q, want %q", i, ref.Year, "2021")
		}
	}
	if want := "https://image.tmdb.org/t/p/w200/first.jpg"; rec.Recommendations[0].Poster != want {
		t.Errorf("Poster = %q, want %q", rec.Recommendations[0].Poster, want)
	}
	if rec.Recommendations[1].Poster != "" {
		t.Errorf("Poster = %q, want empty without a poster path", rec.Recommendations[1].Poster)
	}
}
