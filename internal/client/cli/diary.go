package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/playlog/playlog/internal/validation"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

func (c *Cli) runDiary(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: playlog diary <add|list|delete>")
	}

	switch args[0] {
	case "add":
		return c.runDiaryAdd(ctx)
	case "list":
		return c.runDiaryList(ctx)
	case "show":
		return c.runDiaryShow(ctx, args[1:])
	case "delete":
		return c.runDiaryDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown diary subcommand: %s. Use: add, list, show, or delete", args[0])
	}
}

func (c *Cli) runDiaryAdd(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== New Diary Entry ===")
	c.io.Println("")

	gameIDStr, err := c.io.ReadInput("Game ID: ")
	if err != nil {
		return fmt.Errorf("failed to read game id: %w", err)
	}
	gameID, err := parseID(gameIDStr, "game id")
	if err != nil {
		return err
	}

	platform, err := c.io.ReadInput("Platform (e.g. PC, Playstation5): ")
	if err != nil {
		return fmt.Errorf("failed to read platform: %w", err)
	}

	status, err := c.io.ReadInput("Status (completed/in-progress/dropped): ")
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}
	if err := validation.ValidateDiaryStatus(status); err != nil {
		return err
	}

	ratingStr, err := c.io.ReadInput("Rating (1-5): ")
	if err != nil {
		return fmt.Errorf("failed to read rating: %w", err)
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		return fmt.Errorf("invalid rating: %s", ratingStr)
	}
	if err := validation.ValidateRating(rating); err != nil {
		return err
	}

	playedAt, err := c.io.ReadInput("Played at (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	if err := validation.ValidatePlayedAt(playedAt); err != nil {
		return err
	}

	review, err := c.io.ReadInput("Review: ")
	if err != nil {
		return fmt.Errorf("failed to read review: %w", err)
	}

	likedStr, err := c.io.ReadInput("Liked it? (y/n): ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	entry, err := c.apiClient.CreateDiaryEntry(ctx, c.session.Token(), pkgapi.CreateDiaryRequest{
		GameID:   gameID,
		Platform: platform,
		Status:   status,
		Rating:   rating,
		Review:   review,
		PlayedAt: playedAt,
		Liked:    likedStr == "y" || likedStr == "yes",
	})
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Println("")
	c.io.Printf("✓ Diary entry #%d saved.\n", entry.ID)

	return nil
}

func (c *Cli) runDiaryList(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	entries, err := c.apiClient.ListDiaryEntries(ctx, c.session.Token())
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Println("=== Diary ===")
	c.io.Println("")

	if len(entries) == 0 {
		c.io.Println("No diary entries yet.")
		c.io.Println("")
		c.io.Println("Use 'playlog diary add' to log your first game.")
		return nil
	}

	for _, entry := range entries {
		c.io.Printf("#%d  %s\n", entry.ID, entry.Game.Name)
		c.io.Printf("    Played:   %s on %s\n", entry.PlayedAt, entry.Platform)
		c.io.Printf("    Status:   %s\n", entry.Status)
		c.io.Printf("    Rating:   %d/5\n", entry.Rating)
		if entry.Review != "" {
			c.io.Printf("    Review:   %s\n", entry.Review)
		}
		c.io.Println("")
	}

	return nil
}

func (c *Cli) runDiaryShow(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: playlog diary show <id>")
	}
	id, err := parseID(args[0], "entry id")
	if err != nil {
		return err
	}

	entry, err := c.apiClient.GetDiaryEntry(ctx, c.session.Token(), c.session.Username(), id)
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("=== Diary Entry #%d ===\n", entry.ID)
	c.io.Println("")
	c.io.Printf("Game:     %s\n", entry.Game.Name)
	c.io.Printf("Played:   %s on %s\n", entry.PlayedAt, entry.Platform)
	c.io.Printf("Status:   %s\n", entry.Status)
	c.io.Printf("Rating:   %d/5\n", entry.Rating)
	if entry.Liked {
		c.io.Println("Liked:    yes")
	}
	if entry.Review != "" {
		c.io.Println("")
		c.io.Println(entry.Review)
	}
	c.io.Println("")

	return nil
}

func (c *Cli) runDiaryDelete(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: playlog diary delete <id>")
	}
	id, err := parseID(args[0], "entry id")
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteDiaryEntry(ctx, c.session.Token(), id); err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("✓ Diary entry #%d deleted.\n", id)

	return nil
}
