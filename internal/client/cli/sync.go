package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result := c.client.SyncNow(ctx)
	if result.Skipped {
		if !c.client.IsOnline() {
			c.io.Println("Offline; queued writes will sync when the connection is back.")
		} else {
			c.io.Println("A sync is already running.")
		}
		return nil
	}

	c.io.Printf("Synced: %d\n", result.SyncedCount)
	if result.FailedCount > 0 {
		c.io.Printf("Failed: %d\n", result.FailedCount)
		for _, msg := range result.Errors {
			c.io.Printf("  - %s\n", msg)
		}
	}
	if !result.Success {
		return fmt.Errorf("synchronization finished with failures")
	}

	c.io.Println()
	c.io.Println("Synchronization complete.")
	return nil
}

func (c *Cli) runRefresh(ctx context.Context) error {
	c.io.Println("Refreshing cached data from server...")

	if err := c.client.ForceFullSync(ctx); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	c.io.Println("All cached data refreshed.")
	return nil
}

func (c *Cli) runClear(ctx context.Context) error {
	ok, err := c.io.Confirm("Clear all cached data, queued writes and local bets?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.client.ClearOfflineData(ctx); err != nil {
		return err
	}
	c.io.Println("Offline data cleared.")
	return nil
}
