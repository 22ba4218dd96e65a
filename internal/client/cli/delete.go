package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wagertrack/wagertrack/internal/client/offlineapi"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing bet id. Usage: wagertrack delete <id>")
	}
	id := args[0]

	ok, err := c.io.Confirm(fmt.Sprintf("Delete bet %s?", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.client.DeleteBet(ctx, id); err != nil {
		if errors.Is(err, offlineapi.ErrUnavailableOffline) {
			return fmt.Errorf("cannot delete synced bets while offline; try again when connected")
		}
		return err
	}

	c.io.Println("Bet deleted.")
	return nil
}
