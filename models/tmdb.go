package models

// TMDBSearchResult is one entry of a TMDB search, trending, popular or
// recommendations list. Only the fields the bot consumes are decoded.
type TMDBSearchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// TMDBSearchResponse is the envelope returned by /search/movie,
// /trending/movie/week and /movie/popular.
type TMDBSearchResponse struct {
	Page         int                `json:"page"`
	Results      []TMDBSearchResult `json:"results"`
	TotalPages   int                `json:"total_pages"`
	TotalResults int                `json:"total_results"`
}

// TMDBGenre is a genre entry on a movie detail response.
type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBVideo is one entry of the appended videos list.
type TMDBVideo struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// TMDBVideos wraps the appended videos list.
type TMDBVideos struct {
	Results []TMDBVideo `json:"results"`
}

// TMDBRecommendations wraps the appended recommendations list.
type TMDBRecommendations struct {
	Results []TMDBSearchResult `json:"results"`
}

// TMDBMovieDetail is the response from
// /movie/{id}?append_to_response=videos,recommendations.
type TMDBMovieDetail struct {
	ID               int                 `json:"id"`
	Title            string              `json:"title"`
	ReleaseDate      string              `json:"release_date"`
	Runtime          int                 `json:"runtime"`
	Genres           []TMDBGenre         `json:"genres"`
	OriginalLanguage string              `json:"original_language"`
	VoteAverage      float64             `json:"vote_average"`
	Overview         string              `json:"overview"`
	PosterPath       string              `json:"poster_path"`
	Videos           TMDBVideos          `json:"videos"`
	Recommendations  TMDBRecommendations `json:"recommendations"`
}
