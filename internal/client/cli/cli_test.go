package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlog/playlog/internal/client/api"
	"github.com/playlog/playlog/internal/client/iocli"
	"github.com/playlog/playlog/internal/client/session"
	"github.com/playlog/playlog/internal/client/storage"
)

// memStorage is an in-memory SessionStorage for wiring a real session
// service into CLI tests
type memStorage struct {
	data *storage.SessionData
}

func (m *memStorage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	copied := *session
	m.data = &copied
	return nil
}

func (m *memStorage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	if m.data == nil {
		return nil, storage.ErrSessionNotFound
	}
	copied := *m.data
	return &copied, nil
}

func (m *memStorage) DeleteSession(ctx context.Context) error {
	m.data = nil
	return nil
}

// testIO is an IOMock that records all terminal output and feeds
// scripted answers to prompts
type testIO struct {
	*iocli.IOMock
	out    strings.Builder
	inputs []string
}

func newTestIO(inputs ...string) *testIO {
	tio := &testIO{inputs: inputs}
	tio.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			tio.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&tio.out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return tio.next(), nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return tio.next(), nil
		},
		WriteFunc: func(p []byte) (int, error) {
			return tio.out.Write(p)
		},
	}
	return tio
}

func (tio *testIO) next() string {
	if len(tio.inputs) == 0 {
		return ""
	}
	v := tio.inputs[0]
	tio.inputs = tio.inputs[1:]
	return v
}

func newTestCli(t *testing.T, handler http.HandlerFunc, tio *testIO, seed *storage.SessionData) (*Cli, *memStorage) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient := api.NewClient(server.URL, "test-api-key", 5*time.Second)
	store := &memStorage{data: seed}
	sessionService := session.NewService(apiClient, store)
	sessionService.Restore(context.Background())

	return New(tio, apiClient, sessionService), store
}

func TestRun_Login(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"token":"abc123","user":{"username":"alice"}}}`))
	}

	tio := newTestIO("alice", "secret")
	c, store := newTestCli(t, handler, tio, nil)

	err := c.Run(context.Background(), "login", nil)
	require.NoError(t, err)

	assert.Contains(t, tio.out.String(), "Login successful")
	assert.Contains(t, tio.out.String(), "alice")
	require.NotNil(t, store.data)
	assert.Equal(t, "abc123", store.data.Token)
}

func TestRun_RequiresAuth(t *testing.T) {
	var calls atomic.Int32
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}

	commands := []struct {
		command string
		args    []string
	}{
		{command: "diary", args: []string{"list"}},
		{command: "favorite", args: []string{"114283"}},
		{command: "lists"},
		{command: "profile"},
		{command: "thread-new", args: []string{"persona-5-royal"}},
	}

	for _, tc := range commands {
		t.Run(tc.command, func(t *testing.T) {
			tio := newTestIO()
			c, _ := newTestCli(t, handler, tio, nil)

			err := c.Run(context.Background(), tc.command, tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not authenticated")
		})
	}

	// refusal is local, nothing reaches the backend
	assert.Equal(t, int32(0), calls.Load())
}

func TestRun_SessionExpired(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	}

	tio := newTestIO()
	seed := &storage.SessionData{Username: "alice", Token: "stale"}
	c, store := newTestCli(t, handler, tio, seed)

	err := c.Run(context.Background(), "profile", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")

	// local session is cleared so the next command asks for login
	assert.Nil(t, store.data)
	err = c.Run(context.Background(), "profile", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestRun_Status(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {}

	t.Run("not authenticated", func(t *testing.T) {
		tio := newTestIO()
		c, _ := newTestCli(t, handler, tio, nil)

		require.NoError(t, c.Run(context.Background(), "status", nil))
		assert.Contains(t, tio.out.String(), "Not authenticated")
	})

	t.Run("authenticated", func(t *testing.T) {
		tio := newTestIO()
		seed := &storage.SessionData{Username: "alice", Token: "opaque-token"}
		c, _ := newTestCli(t, handler, tio, seed)

		require.NoError(t, c.Run(context.Background(), "status", nil))
		assert.Contains(t, tio.out.String(), "Status: Authenticated")
		assert.Contains(t, tio.out.String(), "alice")
	})
}

func TestRun_Game(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/games/persona-5-royal", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"id":1,"igdb_id":114283,"slug":"persona-5-royal",
			"name":"Persona 5 Royal","rating":94.2,"total_rating_count":512,
			"summary":"An expanded take on the phantom thieves."}}`))
	}

	tio := newTestIO()
	c, _ := newTestCli(t, handler, tio, nil)

	require.NoError(t, c.Run(context.Background(), "game", []string{"persona-5-royal"}))

	out := tio.out.String()
	assert.Contains(t, out, "=== Persona 5 Royal ===")
	assert.Contains(t, out, "94.2")
	assert.Contains(t, out, "phantom thieves")
}

func TestRun_DiaryShow(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/alice/diary/9", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"id":9,
			"game":{"id":1,"name":"Hades","slug":"hades"},
			"platform":"PC","status":"completed","rating":5,
			"review":"Every run felt fresh.","played_at":"2026-08-01","liked":true}}`))
	}

	tio := newTestIO()
	seed := &storage.SessionData{Username: "alice", Token: "token"}
	c, _ := newTestCli(t, handler, tio, seed)

	require.NoError(t, c.Run(context.Background(), "diary", []string{"show", "9"}))

	out := tio.out.String()
	assert.Contains(t, out, "=== Diary Entry #9 ===")
	assert.Contains(t, out, "Hades")
	assert.Contains(t, out, "Rating:   5/5")
	assert.Contains(t, out, "Every run felt fresh.")
}

func TestRun_DiaryShow_RequiresAuth(t *testing.T) {
	tio := newTestIO()
	c, _ := newTestCli(t, func(w http.ResponseWriter, r *http.Request) {}, tio, nil)

	err := c.Run(context.Background(), "diary", []string{"show", "9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestRun_FavoriteLimitMessage(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Favorite limit reached"}`))
	}

	tio := newTestIO()
	seed := &storage.SessionData{Username: "alice", Token: "token"}
	c, _ := newTestCli(t, handler, tio, seed)

	err := c.Run(context.Background(), "favorite", []string{"114283"})
	require.Error(t, err)
	assert.Equal(t, "Favorite limit reached", err.Error())
}

func TestRun_UnknownCommand(t *testing.T) {
	tio := newTestIO()
	c, _ := newTestCli(t, func(w http.ResponseWriter, r *http.Request) {}, tio, nil)

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, tio.out.String(), "Usage:")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "thread id")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseID("abc", "thread id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid thread id")

	_, err = parseID("-1", "thread id")
	require.Error(t, err)
}
