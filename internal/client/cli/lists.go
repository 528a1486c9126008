package cli

import (
	"context"
	"fmt"
	"strings"

	pkgapi "github.com/playlog/playlog/pkg/api"
)

func (c *Cli) runLists(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	username := c.session.Username()
	if len(args) > 0 {
		username = args[0]
	}

	lists, err := c.apiClient.UserLists(ctx, c.session.Token(), username)
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("=== Lists of %s ===\n", username)
	c.io.Println("")

	if len(lists) == 0 {
		c.io.Println("No lists yet.")
		c.io.Println("")
		c.io.Println("Use 'playlog list-create' to create one.")
		return nil
	}

	for _, list := range lists {
		c.io.Printf("#%d  %s (%d games)\n", list.ID, list.Title, len(list.Games))
		if list.Description != "" {
			c.io.Printf("    %s\n", list.Description)
		}
		for _, game := range list.Games {
			c.io.Printf("    - %s\n", game.Name)
		}
		c.io.Println("")
	}

	return nil
}

func (c *Cli) runListCreate(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== New List ===")
	c.io.Println("")

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	description, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	idsStr, err := c.io.ReadInput("Game IDs (comma separated, optional): ")
	if err != nil {
		return fmt.Errorf("failed to read game ids: %w", err)
	}

	var refs []pkgapi.ListGameRef
	if idsStr != "" {
		for _, part := range strings.Split(idsStr, ",") {
			id, err := parseID(strings.TrimSpace(part), "game id")
			if err != nil {
				return err
			}
			refs = append(refs, pkgapi.ListGameRef{ID: id})
		}
	}

	list, err := c.apiClient.CreateList(ctx, c.session.Token(), pkgapi.CreateListRequest{
		Name:        name,
		Description: description,
		Data:        refs,
	})
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Println("")
	c.io.Printf("✓ List #%d created.\n", list.ID)

	return nil
}

func (c *Cli) runFavorite(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing game id. Usage: playlog favorite <igdb-id>")
	}
	igdbID, err := parseID(args[0], "igdb id")
	if err != nil {
		return err
	}

	item, err := c.apiClient.AddToFavorites(ctx, c.session.Token(), igdbID)
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("✓ %s added to favorites.\n", item.Name)

	return nil
}

func (c *Cli) runGameListAdd(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing game slug. Usage: playlog gamelist-add <slug>")
	}

	if err := c.apiClient.AddToGameList(ctx, c.session.Token(), args[0]); err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("✓ %s added to your gamelist.\n", args[0])

	return nil
}
