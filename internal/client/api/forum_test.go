package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/playlog/playlog/pkg/api"
)

const threadDetailBody = `{
	"data": {
		"data": {
			"id": 7,
			"title": "Best ending discussion",
			"content": "spoilers ahead",
			"user": {"id":3,"username":"alice","profile_picture_url":""},
			"replies_count": 2,
			"replies": [
				{"id":1,"content":"agreed","created_at":"2024-05-01T10:00:00Z","user":{"id":4,"username":"bob","profile_picture_url":""}},
				{"id":2,"content":"disagree","created_at":"2024-05-01T11:00:00Z","user":{"id":5,"username":"carol","profile_picture_url":""}}
			]
		}
	}
}`

// TestClient_ListForumThreads checks the forum listing defaults and
// pagination normalization
func TestClient_ListForumThreads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/forum/games/persona-5-royal", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "30", q.Get("per_page"))
		// Forum listings default to recency, not rating count
		assert.Equal(t, "created_at", q.Get("sort_by"))
		assert.Equal(t, "desc", q.Get("sort_direction"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": {
				"data": [{"id":7,"title":"Best ending discussion","replies_count":2,"user":{"id":3,"username":"alice"}}],
				"meta": {"current_page":1,"last_page":1,"per_page":30,"total":1},
				"links": {"next":null,"prev":null}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	page, err := client.ListForumThreads(context.Background(), "persona-5-royal", ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Threads, 1)
	assert.Equal(t, "Best ending discussion", page.Threads[0].Title)
	assert.Nil(t, page.NextPage)
}

// TestClient_GetForumThread checks the double-wrapped payload unwrap
func TestClient_GetForumThread(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/forum/7", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(threadDetailBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	detail, err := client.GetForumThread(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, detail.ID)
	assert.Equal(t, "alice", detail.User.Username)
	require.Len(t, detail.Replies, 2)
	assert.Equal(t, "bob", detail.Replies[0].User.Username)
}

// TestClient_GetForumReplies checks that the replies projection is
// derived from a single thread fetch
func TestClient_GetForumReplies(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(threadDetailBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	replies, err := client.GetForumReplies(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "agreed", replies[0].Content)
	assert.Equal(t, int32(1), requests.Load())
}

// TestClient_GetForumThread_MissingInnerData checks that an empty
// inner data field is malformed, not an empty thread
func TestClient_GetForumThread_MissingInnerData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetForumThread(context.Background(), 7)
	require.Error(t, err)

	var malformed *MalformedError
	assert.ErrorAs(t, err, &malformed)
}

// TestClient_CreateForumThread checks the authenticated thread create
func TestClient_CreateForumThread(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/forum/games/persona-5-royal", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))

		var req pkgapi.CreateThreadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 42, req.GameLocalID)
		assert.Equal(t, "New thread", req.Title)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":8,"title":"New thread","content":"hi","game_local_id":42}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	thread, err := client.CreateForumThread(context.Background(), "abc123", "persona-5-royal", pkgapi.CreateThreadRequest{
		GameLocalID: 42,
		Title:       "New thread",
		Content:     "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, thread.ID)
}

// TestClient_CreateForumReply checks the double-wrapped reply payload
func TestClient_CreateForumReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/forum/7/replies", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"data":{"id":3,"content":"me too","created_at":"2024-05-02T09:00:00Z","user":{"id":3,"username":"alice"}}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reply, err := client.CreateForumReply(context.Background(), "abc123", 7, pkgapi.CreateReplyRequest{Content: "me too"})
	require.NoError(t, err)
	assert.Equal(t, 3, reply.ID)
	assert.Equal(t, "me too", reply.Content)
}

// TestClient_CreateForumReply_Error checks the backend message is kept
func TestClient_CreateForumReply_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Content is required"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateForumReply(context.Background(), "abc123", 7, pkgapi.CreateReplyRequest{})
	require.Error(t, err)
	assert.Equal(t, "Content is required", err.Error())
}
