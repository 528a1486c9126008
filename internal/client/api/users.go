package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/playlog/playlog/internal/models"
)

// UserProfile fetches a user's public profile with its game shelves.
func (c *Client) UserProfile(ctx context.Context, token, username string) (*models.Profile, error) {
	var profile models.Profile
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/user/" + url.PathEscape(username),
		op:     "fetch profile",
		token:  token,
	}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UserFollowing fetches the users a given user follows.
func (c *Client) UserFollowing(ctx context.Context, token, username string) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/user/" + url.PathEscape(username) + "/following",
		op:     "fetch following",
		token:  token,
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}
