package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wagertrack/wagertrack/internal/client/offlineapi"
	"github.com/wagertrack/wagertrack/internal/models"
	pkgapi "github.com/wagertrack/wagertrack/pkg/api"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	filters, err := parseFilters(args)
	if err != nil {
		return err
	}

	bets, err := c.client.GetBets(ctx, filters)
	if err != nil {
		if errors.Is(err, offlineapi.ErrUnavailableOffline) {
			return fmt.Errorf("offline and no cached bets available; try again when connected")
		}
		return fmt.Errorf("failed to list bets: %w", err)
	}

	c.io.Println("=== Bets ===")
	c.io.Println()

	if len(bets) == 0 {
		c.io.Println("No bets found.")
		c.io.Println()
		c.io.Println("Use 'wagertrack add' to record your first bet.")
		return nil
	}

	c.io.Printf("Found %d bet(s):\n", len(bets))
	c.io.Println()

	for i, bet := range bets {
		marker := ""
		if models.IsOfflineID(bet.ID) {
			marker = " (pending sync)"
		}
		c.io.Printf("%d. %s %s $%.2f @ %s [%s]%s\n",
			i+1, bet.Sport, bet.Type, bet.Amount, bet.Odds, bet.Status, marker)
		c.io.Printf("   ID:     %s\n", bet.ID)
		c.io.Printf("   Placed: %s\n", bet.CreatedAt.Format("2006-01-02 15:04"))
		if bet.Description != "" {
			c.io.Printf("   Note:   %s\n", bet.Description)
		}
		c.io.Println()
	}
	return nil
}

// parseFilters reads key=value arguments: sport=NBA status=PENDING limit=20.
func parseFilters(args []string) (pkgapi.BetFilters, error) {
	var filters pkgapi.BetFilters
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return filters, fmt.Errorf("invalid filter %q, expected key=value", arg)
		}
		switch key {
		case "sport":
			filters.Sport = value
		case "status":
			filters.Status = strings.ToUpper(value)
		case "limit":
			limit, err := strconv.Atoi(value)
			if err != nil {
				return filters, fmt.Errorf("invalid limit %q: %w", value, err)
			}
			filters.Limit = limit
		default:
			return filters, fmt.Errorf("unknown filter key %q", key)
		}
	}
	return filters, nil
}
