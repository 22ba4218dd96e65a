package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.client.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out. Local offline data has been cleared.")
	return nil
}
