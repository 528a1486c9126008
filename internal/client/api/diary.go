package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/playlog/playlog/internal/models"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

// CreateDiaryEntry logs one play activity for the authenticated user.
func (c *Client) CreateDiaryEntry(ctx context.Context, token string, req pkgapi.CreateDiaryRequest) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/diary/create",
		op:     "create diary entry",
		token:  token,
		body:   req,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListDiaryEntries fetches the authenticated user's diary.
// The backend serves the listing on the same path the create uses.
func (c *Client) ListDiaryEntries(ctx context.Context, token string) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/diary/create",
		op:     "fetch diary",
		token:  token,
	}, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetDiaryEntry fetches one diary entry of a user by entry id.
func (c *Client) GetDiaryEntry(ctx context.Context, token, username string, id int) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/%s/diary/%d", url.PathEscape(username), id),
		op:     "fetch diary entry",
		token:  token,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteDiaryEntry removes one diary entry of the authenticated user.
func (c *Client) DeleteDiaryEntry(ctx context.Context, token string, id int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/diary/%d", id),
		op:     "delete diary entry",
		token:  token,
	}, nil)
}
