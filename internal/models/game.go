package models

// Game represents a catalog game record.
// ID is the catalog-local identifier, IGDBID the upstream IGDB one;
// list endpoints reference games by either depending on the operation.
type Game struct {
	ID               int     `json:"id"`
	IGDBID           int     `json:"igdb_id"`
	Slug             string  `json:"slug"`
	Name             string  `json:"name"`
	CoverURL         string  `json:"cover_url"`
	Summary          string  `json:"summary,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	Rating           float64 `json:"rating,omitempty"`
	TotalRatingCount int     `json:"total_rating_count,omitempty"`
}

// GamePage is one page of the game catalog listing.
type GamePage struct {
	Games []Game `json:"data"`
	Pagination
}
