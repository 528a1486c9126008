package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println("")
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Println("")
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", c.session.Username())
	c.io.Println("")
	c.io.Println("Your session has been saved.")

	return nil
}
