package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/playlog/playlog/internal/models"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

// innerData is the extra wrapping the forum detail and created-reply
// payloads carry: the envelope's data holds another {data: ...}.
type innerData struct {
	Data json.RawMessage `json:"data"`
}

// ListForumThreads fetches one page of a game's discussion threads.
// Omitted options default to page 1, 30 per page, newest first.
func (c *Client) ListForumThreads(ctx context.Context, slug string, opts ListOptions) (*models.ThreadPage, error) {
	var page pageEnvelope
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/forum/games/" + url.PathEscape(slug),
		op:     "fetch forum threads",
		query:  opts.query(ForumDefaultSortBy),
	}, &page)
	if err != nil {
		return nil, err
	}

	var threads []models.ForumThread
	if rawPresent(page.Data) {
		if err := json.Unmarshal(page.Data, &threads); err != nil {
			return nil, &MalformedError{Op: "fetch forum threads"}
		}
	}

	return &models.ThreadPage{
		Threads:    threads,
		Pagination: normalizePage(page.Meta),
	}, nil
}

// CreateForumThread opens a new discussion thread in a game's forum.
func (c *Client) CreateForumThread(ctx context.Context, token, slug string, req pkgapi.CreateThreadRequest) (*models.ForumThread, error) {
	var thread models.ForumThread
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/forum/games/" + url.PathEscape(slug),
		op:     "create thread",
		token:  token,
		body:   req,
	}, &thread)
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetForumThread fetches one thread together with its nested replies.
func (c *Client) GetForumThread(ctx context.Context, threadID int) (*models.ThreadDetail, error) {
	const op = "fetch thread"

	var inner innerData
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/forum/%d", threadID),
		op:     op,
	}, &inner)
	if err != nil {
		return nil, err
	}

	if !rawPresent(inner.Data) {
		return nil, &MalformedError{Op: op}
	}

	var detail models.ThreadDetail
	if err := json.Unmarshal(inner.Data, &detail); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response data: %w", op, err)
	}

	return &detail, nil
}

// GetForumReplies is the replies-only projection of the thread detail.
// It is derived from the same single fetch, never a second request.
func (c *Client) GetForumReplies(ctx context.Context, threadID int) ([]models.Reply, error) {
	detail, err := c.GetForumThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return detail.Replies, nil
}

// CreateForumReply posts a reply to a thread.
func (c *Client) CreateForumReply(ctx context.Context, token string, threadID int, req pkgapi.CreateReplyRequest) (*models.Reply, error) {
	const op = "post reply"

	var inner innerData
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/forum/%d/replies", threadID),
		op:     op,
		token:  token,
		body:   req,
	}, &inner)
	if err != nil {
		return nil, err
	}

	if !rawPresent(inner.Data) {
		return nil, &MalformedError{Op: op}
	}

	var reply models.Reply
	if err := json.Unmarshal(inner.Data, &reply); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response data: %w", op, err)
	}

	return &reply, nil
}
