package cli

import (
	"context"
	"fmt"
)

// Run dispatches one command. Every command returns its error to the
// caller; only main decides the process exit code.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "games":
		return c.runGames(ctx, args)
	case "game":
		return c.runGame(ctx, args)
	case "diary":
		return c.runDiary(ctx, args)
	case "forum":
		return c.runForum(ctx, args)
	case "thread":
		return c.runThread(ctx, args)
	case "thread-new":
		return c.runThreadNew(ctx, args)
	case "reply":
		return c.runReply(ctx, args)
	case "lists":
		return c.runLists(ctx, args)
	case "list-create":
		return c.runListCreate(ctx)
	case "favorite":
		return c.runFavorite(ctx, args)
	case "gamelist-add":
		return c.runGameListAdd(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	case "following":
		return c.runFollowing(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
