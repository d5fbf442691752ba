// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Movie is a catalog entry mirrored from the external metadata provider.
// TMDBID is the provider's identifier and the public lookup key.
type Movie struct {
	ID           int64     `json:"-"`            // Local surrogate key, not part of the API.
	TMDBID       int64     `json:"tmdbId"`       // The metadata provider's movie id, unique.
	Title        string    `json:"title"`        // Display title.
	Overview     string    `json:"overview"`     // Plot summary.
	PosterPath   string    `json:"posterPath"`   // Relative image path on the provider's CDN.
	BackdropPath string    `json:"backdropPath"` // Relative backdrop image path.
	ReleaseDate  string    `json:"releaseDate"`  // ISO date string as delivered by the provider.
	VoteAverage  float64   `json:"voteAverage"`  // Provider community score, 0..10.
	VoteCount    int64     `json:"voteCount"`    // Number of provider votes.
	Popularity   float64   `json:"popularity"`   // Provider popularity metric, used for ordering.
	Genres       []string  `json:"genres"`       // Resolved genre names.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MovieVideo is a trailer or clip attached to a movie.
type MovieVideo struct {
	Key      string `json:"key"` // Provider-specific video key (YouTube id for most entries).
	Name     string `json:"name"`
	Site     string `json:"site"` // Hosting site, e.g. "YouTube".
	Type     string `json:"type"` // "Trailer", "Teaser", ...
	Official bool   `json:"official"`
}

// MoviePage is one page of catalog search results.
type MoviePage struct {
	Results []Movie `json:"results"`
	Total   int64   `json:"total"` // Total matching rows across all pages.
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
}
