package cli

import (
	"context"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	username := c.session.Username()
	if len(args) > 0 {
		username = args[0]
	}

	profile, err := c.apiClient.UserProfile(ctx, c.session.Token(), username)
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	return renderTemplate(c.io, profileTemplate, profile)
}

func (c *Cli) runFollowing(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	username := c.session.Username()
	if len(args) > 0 {
		username = args[0]
	}

	users, err := c.apiClient.UserFollowing(ctx, c.session.Token(), username)
	if err != nil {
		return c.checkAuthReject(ctx, err)
	}

	c.io.Printf("=== %s follows ===\n", username)
	c.io.Println("")

	if len(users) == 0 {
		c.io.Println("Not following anyone yet.")
		return nil
	}

	for _, user := range users {
		c.io.Printf("  %s\n", user.Username)
	}

	return nil
}
