package cli

import (
	"context"
	"fmt"

	"github.com/playlog/playlog/internal/client/api"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

func (c *Cli) runForum(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game slug. Usage: playlog forum <slug> [page]")
	}
	slug := args[0]

	opts := api.ListOptions{}
	if len(args) > 1 {
		page, err := parseID(args[1], "page")
		if err != nil {
			return err
		}
		opts.Page = page
	}

	page, err := c.apiClient.ListForumThreads(ctx, slug, opts)
	if err != nil {
		return err
	}

	c.io.Printf("=== Forum: %s ===\n", slug)
	c.io.Println("")

	if len(page.Threads) == 0 {
		c.io.Println("No threads yet.")
		c.io.Println("")
		c.io.Printf("Use 'playlog thread-new %s' to start the first discussion.\n", slug)
		return nil
	}

	for _, thread := range page.Threads {
		c.io.Printf("#%d  %s\n", thread.ID, thread.Title)
		c.io.Printf("    by %s, %d replies\n", thread.User.Username, thread.RepliesCount)
		c.io.Println("")
	}

	c.io.Printf("Page %d of %d", page.CurrentPage, page.LastPage)
	if page.HasMore() {
		c.io.Printf(" - run 'playlog forum %s %d' for more", slug, *page.NextPage)
	}
	c.io.Println("")

	return nil
}

func (c *Cli) runThread(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing thread id. Usage: playlog thread <id>")
	}
	id, err := parseID(args[0], "thread id")
	if err != nil {
		return err
	}

	detail, err := c.apiClient.GetForumThread(ctx, id)
	if err != nil {
		return err
	}

	return renderTemplate(c.io, threadTemplate, detail)
}

func (c *Cli) runThreadNew(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing game slug. Usage: playlog thread-new <slug>")
	}
	slug := args[0]

	c.io.Println("=== New Thread ===")
	c.io.Println("")

	gameIDStr, err := c.io.ReadInput("Game ID: ")
	if err != nil {
		return fmt.Errorf("failed to read game id: %w", err)
	}
	gameID, err := parseID(gameIDStr, "game id")
	if err != nil {
		return err
	}

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	thread, err := c.apiClient.CreateForumThread(ctx, c.session.Token(), slug, pkgapi.CreateThreadRequest{
		GameLocalID: gameID,
		Title:       title,
		Content:     content,
	})
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Println("")
	c.io.Printf("✓ Thread #%d created.\n", thread.ID)

	return nil
}

func (c *Cli) runReply(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing thread id. Usage: playlog reply <id>")
	}
	id, err := parseID(args[0], "thread id")
	if err != nil {
		return err
	}

	content, err := c.io.ReadInput("Reply: ")
	if err != nil {
		return fmt.Errorf("failed to read reply: %w", err)
	}
	if content == "" {
		return fmt.Errorf("reply cannot be empty")
	}

	reply, err := c.apiClient.CreateForumReply(ctx, c.session.Token(), id, pkgapi.CreateReplyRequest{
		Content: content,
	})
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("✓ Reply #%d posted.\n", reply.ID)

	return nil
}
