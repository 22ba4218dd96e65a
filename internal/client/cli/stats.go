package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wagertrack/wagertrack/internal/client/offlineapi"
)

func (c *Cli) runStats(ctx context.Context) error {
	stats, err := c.client.GetBetStats(ctx)
	if err != nil {
		if errors.Is(err, offlineapi.ErrUnavailableOffline) {
			return fmt.Errorf("offline and no cached stats available; try again when connected")
		}
		return fmt.Errorf("failed to get stats: %w", err)
	}

	c.io.Println("=== Betting Stats ===")
	c.io.Println()
	c.io.Printf("Total bets:    %d\n", stats.TotalBets)
	c.io.Printf("Pending bets:  %d\n", stats.PendingBets)
	c.io.Printf("Total wagered: $%.2f\n", stats.TotalWagered)
	c.io.Printf("Total profit:  $%.2f\n", stats.TotalProfit)
	c.io.Printf("Win rate:      %.1f%%\n", stats.WinRate*100)
	c.io.Printf("ROI:           %.1f%%\n", stats.ROI*100)
	return nil
}
