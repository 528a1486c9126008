package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/playlog/playlog/internal/client/api"
	"github.com/playlog/playlog/internal/client/iocli"
	"github.com/playlog/playlog/internal/client/session"
)

// Cli wires terminal commands to the API gateway and the session.
type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	session   *session.Service
}

func New(io iocli.IO, apiClient *api.Client, sessionService *session.Service) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		session:   sessionService,
	}
}

// requireAuth guards commands that need a bearer token. Unauthenticated
// users are refused locally; the call is never issued.
func (c *Cli) requireAuth() error {
	if !c.session.IsAuthenticated() {
		return fmt.Errorf("not authenticated. Please run 'playlog login' first")
	}
	return nil
}

// checkAuthReject clears the local session when the backend rejected
// the token, so the next command asks for a fresh login.
func (c *Cli) checkAuthReject(ctx context.Context, err error) error {
	if api.IsUnauthorized(err) {
		if invErr := c.session.Invalidate(ctx); invErr != nil {
			return invErr
		}
		return fmt.Errorf("session expired. Please run 'playlog login' again")
	}
	return err
}

// parseID parses a positive numeric command argument.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %s", what, arg)
	}
	return id, nil
}

func PrintUsage(io iocli.IO) {
	io.Println("PlayLog Client")
	io.Println("")
	io.Println("Usage:")
	io.Println("  playlog [OPTIONS] COMMAND")
	io.Println("")
	io.Println("Options:")
	io.Println("  --version            Show version information")
	io.Println("  --server URL         Backend URL (default: http://localhost:8080)")
	io.Println("  --config PATH        Path to config file")
	io.Println("  --api-key KEY        API key sent as X-API-KEY")
	io.Println("  --db PATH            Path to local database (default: playlog-client.db)")
	io.Println("")
	io.Println("Commands:")
	io.Println("  login                         Login to PlayLog")
	io.Println("  logout                        Logout and clear the local session")
	io.Println("  status                        Show authentication status")
	io.Println("  games [page]                  Browse the game catalog")
	io.Println("  games popular                 Popular games this year")
	io.Println("  games new                     New releases")
	io.Println("  game <slug>                   Show one game")
	io.Println("  diary add                     Log a play diary entry")
	io.Println("  diary list                    Show your diary")
	io.Println("  diary show <id>               Show one diary entry")
	io.Println("  diary delete <id>             Delete a diary entry")
	io.Println("  forum <slug> [page]           Browse a game's forum threads")
	io.Println("  thread <id>                   Show a thread with its replies")
	io.Println("  thread-new <slug>             Open a new thread")
	io.Println("  reply <id>                    Reply to a thread")
	io.Println("  lists [username]              Show a user's lists")
	io.Println("  list-create                   Create a new list")
	io.Println("  favorite <igdb-id>            Add a game to favorites")
	io.Println("  gamelist-add <slug>           Add a game to your gamelist")
	io.Println("  profile [username]            Show a profile")
	io.Println("  following [username]          Show who a user follows")
	io.Println("")
	io.Println("Examples:")
	io.Println("  playlog login")
	io.Println("  playlog games 2")
	io.Println("  playlog game persona-5-royal")
	io.Println("  playlog forum persona-5-royal")
	io.Println("  playlog favorite 114283")
}
