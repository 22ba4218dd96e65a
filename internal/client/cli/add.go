package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wagertrack/wagertrack/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== New Bet ===")
	c.io.Println()

	betType, err := c.readBetType()
	if err != nil {
		return err
	}

	sport, err := c.io.ReadInput("Sport: ")
	if err != nil {
		return fmt.Errorf("failed to read sport: %w", err)
	}
	if sport == "" {
		return fmt.Errorf("sport cannot be empty")
	}

	amount, err := c.readAmount()
	if err != nil {
		return err
	}

	odds, err := c.io.ReadInput("Odds (e.g. -110 or +250): ")
	if err != nil {
		return fmt.Errorf("failed to read odds: %w", err)
	}
	if odds == "" {
		return fmt.Errorf("odds cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	bet, err := c.client.CreateBet(ctx, models.CreateBetData{
		Type:        betType,
		Sport:       sport,
		Amount:      amount,
		Odds:        odds,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}

	c.io.Println()
	if models.IsOfflineID(bet.ID) {
		c.io.Println("Bet saved locally; it will sync when the connection is back.")
	} else {
		c.io.Println("Bet created!")
	}
	c.io.Printf("ID: %s\n", bet.ID)
	return nil
}

func (c *Cli) readBetType() (models.BetType, error) {
	input, err := c.io.ReadInput("Type (straight/parlay/prop) [straight]: ")
	if err != nil {
		return "", fmt.Errorf("failed to read bet type: %w", err)
	}

	switch strings.ToLower(input) {
	case "", "straight":
		return models.BetTypeStraight, nil
	case "parlay":
		return models.BetTypeParlay, nil
	case "prop":
		return models.BetTypeProp, nil
	default:
		return "", fmt.Errorf("unknown bet type: %s", input)
	}
}

func (c *Cli) readAmount() (float64, error) {
	input, err := c.io.ReadInput("Amount: ")
	if err != nil {
		return 0, fmt.Errorf("failed to read amount: %w", err)
	}

	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", input, err)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}
