package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/playlog/playlog/internal/models"
)

// ListGames fetches one page of the game catalog. Omitted options
// default to page 1, 30 per page, sorted by total rating count
// descending.
func (c *Client) ListGames(ctx context.Context, opts ListOptions) (*models.GamePage, error) {
	var page pageEnvelope
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/games",
		op:     "fetch games",
		query:  opts.query(GamesDefaultSortBy),
	}, &page)
	if err != nil {
		return nil, err
	}

	var games []models.Game
	if rawPresent(page.Data) {
		if err := json.Unmarshal(page.Data, &games); err != nil {
			return nil, &MalformedError{Op: "fetch games"}
		}
	}

	return &models.GamePage{
		Games:      games,
		Pagination: normalizePage(page.Meta),
	}, nil
}

// GetGame fetches a single game record by its slug.
func (c *Client) GetGame(ctx context.Context, slug string) (*models.Game, error) {
	var game models.Game
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/games/" + url.PathEscape(slug),
		op:     "fetch game",
	}, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// PopularThisYear fetches the homepage's popular-this-year shelf.
func (c *Client) PopularThisYear(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/popular-this-year",
		op:     "fetch popular games",
	}, &games)
	if err != nil {
		return nil, err
	}
	return games, nil
}

// NewReleases fetches the homepage's new-release shelf.
func (c *Client) NewReleases(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/new-release",
		op:     "fetch new releases",
	}, &games)
	if err != nil {
		return nil, err
	}
	return games, nil
}
