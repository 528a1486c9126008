package cli

import (
	"context"
	"fmt"

	"github.com/playlog/playlog/internal/client/api"
	"github.com/playlog/playlog/internal/models"
)

func (c *Cli) runGames(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "popular":
			return c.runGamesShelf(ctx, "Popular This Year", c.apiClient.PopularThisYear)
		case "new":
			return c.runGamesShelf(ctx, "New Releases", c.apiClient.NewReleases)
		}
	}

	opts := api.ListOptions{}
	if len(args) > 0 {
		page, err := parseID(args[0], "page")
		if err != nil {
			return err
		}
		opts.Page = page
	}

	page, err := c.apiClient.ListGames(ctx, opts)
	if err != nil {
		return err
	}

	c.io.Println("=== Games ===")
	c.io.Println("")
	c.printGames(page.Games)

	c.io.Printf("Page %d of %d", page.CurrentPage, page.LastPage)
	if page.HasMore() {
		c.io.Printf(" - run 'playlog games %d' for more", *page.NextPage)
	}
	c.io.Println("")

	return nil
}

func (c *Cli) runGamesShelf(ctx context.Context, title string, fetch func(context.Context) ([]models.Game, error)) error {
	games, err := fetch(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", title)
	c.io.Println("")
	c.printGames(games)

	return nil
}

func (c *Cli) runGame(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game slug. Usage: playlog game <slug>")
	}

	game, err := c.apiClient.GetGame(ctx, args[0])
	if err != nil {
		return err
	}

	return renderTemplate(c.io, gameTemplate, game)
}

func (c *Cli) printGames(games []models.Game) {
	if len(games) == 0 {
		c.io.Println("No games found.")
		c.io.Println("")
		return
	}

	for i, game := range games {
		c.io.Printf("%d. %s\n", i+1, game.Name)
		c.io.Printf("   Slug:    %s\n", game.Slug)
		if game.ReleaseDate != "" {
			c.io.Printf("   Release: %s\n", game.ReleaseDate)
		}
		if game.TotalRatingCount > 0 {
			c.io.Printf("   Ratings: %d\n", game.TotalRatingCount)
		}
		c.io.Println("")
	}
}
