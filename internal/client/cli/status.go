package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wagertrack/wagertrack/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.client.RestoreSession(ctx)
	switch {
	case err == nil:
		c.io.Printf("Logged in as:  %s\n", session.Email)
		if !session.ExpiresAt.IsZero() {
			c.io.Printf("Session until: %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Not logged in.")
	default:
		return fmt.Errorf("failed to check session: %w", err)
	}

	status, err := c.client.GetSyncStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Println()
	if status.IsOnline {
		c.io.Println("Connection:    online")
	} else {
		c.io.Println("Connection:    offline")
	}
	c.io.Printf("Pending syncs: %d\n", status.PendingCount)
	if status.LastSyncAt != nil {
		c.io.Printf("Last sync:     %s\n", status.LastSyncAt.Format("2006-01-02 15:04:05"))
	} else {
		c.io.Println("Last sync:     never")
	}
	if status.IsSyncing {
		c.io.Println("Sync in progress...")
	}

	info, err := c.client.GetStorageInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get storage info: %w", err)
	}

	c.io.Println()
	c.io.Printf("Local storage: %s\n", info.Used)
	c.io.Printf("Local bets:    %d\n", info.LocalRecords)
	return nil
}
