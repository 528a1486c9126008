package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/playlog/playlog/internal/models"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

// AddToFavorites adds a game to the authenticated user's favorites.
// When the backend refuses because of its favorites limit, the error
// carries the backend's own message so callers can tell the limit
// apart from a generic failure.
func (c *Client) AddToFavorites(ctx context.Context, token string, igdbID int) (*models.FavoriteItem, error) {
	var item models.FavoriteItem
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/lists/add-to-favorites",
		op:     "add to favorites",
		token:  token,
		body:   pkgapi.AddFavoriteRequest{IGDBID: igdbID},
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddToGameList adds the game identified by slug to the user's
// gamelist. The reply is a plain ack.
func (c *Client) AddToGameList(ctx context.Context, token, slug string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/lists/" + url.PathEscape(slug) + "/custom",
		op:     "add to gamelist",
		token:  token,
	}, nil)
}

// UserLists fetches all curated lists of a user.
func (c *Client) UserLists(ctx context.Context, token, username string) ([]models.UserList, error) {
	var lists []models.UserList
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/user/" + url.PathEscape(username) + "/lists",
		op:     "fetch lists",
		token:  token,
	}, &lists)
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateList creates a new curated list for the authenticated user.
func (c *Client) CreateList(ctx context.Context, token string, req pkgapi.CreateListRequest) (*models.UserList, error) {
	var list models.UserList
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/lists/custom",
		op:     "create list",
		token:  token,
		body:   req,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}
