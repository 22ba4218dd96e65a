package offlineapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wagertrack/wagertrack/internal/client/cache"
	"github.com/wagertrack/wagertrack/internal/client/offline"
	"github.com/wagertrack/wagertrack/internal/models"
	pkgapi "github.com/wagertrack/wagertrack/pkg/api"
)

// Cache keys and TTLs for the bets domain. Collections churn fastest, so
// they get the shortest window; aggregates tolerate more staleness.
const (
	keyBets     = "bets"
	keyBetStats = "bet_stats"

	ttlBets     = 15 * time.Minute
	ttlBetStats = 30 * time.Minute
)

// betsCacheKey is keyBets plus a stable suffix per filter combination.
func betsCacheKey(filters pkgapi.BetFilters) string {
	return keyBets + filters.CacheKey()
}

// CreateBet creates a bet, online or not. Online, the bet goes straight to
// the server. Offline (or when the remote create fails), a local record with
// a temporary id is created and the write queued; the returned bet carries
// that temporary id until the next sync.
func (c *Client) CreateBet(ctx context.Context, data models.CreateBetData) (*models.Bet, error) {
	if c.monitor.IsOnline() {
		bet, err := c.apiClient.CreateBet(ctx, data, "")
		if err == nil {
			c.invalidateBets(ctx)
			return bet, nil
		}
		c.logger.Warn("remote create failed, saving locally", "error", err)
	}

	record, _, err := c.records.CreateRecord(ctx, data)
	if err != nil {
		return nil, err
	}

	bet := record.Bet()
	return &bet, nil
}

// GetBets lists bets. Online, the server result is cached and merged with
// any unsynced local records; offline, the cached copy serves the same
// merge. With neither cache nor locals, the read fails as unavailable.
// The merged list is sorted newest first.
func (c *Client) GetBets(ctx context.Context, filters pkgapi.BetFilters) ([]models.Bet, error) {
	locals, err := c.records.UnsyncedRecords(ctx)
	if err != nil {
		return nil, err
	}

	key := betsCacheKey(filters)

	var fetchErr error
	if c.monitor.IsOnline() {
		remote, err := c.apiClient.GetBets(ctx, filters)
		if err == nil {
			if cacheErr := c.cache.Set(ctx, key, remote, ttlBets); cacheErr != nil {
				c.logger.Warn("failed to cache bets", "error", cacheErr)
			}
			return mergeBets(remote, locals), nil
		}
		fetchErr = err
		c.logger.Warn("fetch failed, falling back to cache", "key", key, "error", err)
	}

	var cached []models.Bet
	if outcome := c.cache.Get(ctx, key, &cached); outcome == cache.Hit {
		return mergeBets(cached, locals), nil
	}

	// No server, no cache; unsynced locals are still the user's data.
	if len(locals) > 0 {
		return mergeBets(nil, locals), nil
	}

	if fetchErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailableOffline, fetchErr)
	}
	return nil, ErrUnavailableOffline
}

// GetBetStats fetches the aggregate summary, cache-backed.
func (c *Client) GetBetStats(ctx context.Context) (*models.BetStats, error) {
	return readThrough(ctx, c, keyBetStats, ttlBetStats, c.apiClient.GetBetStats)
}

// UpdateBet applies a partial update. Bets with a temporary id are edited
// locally, and the queued create is rewritten so the replay carries the
// edit. Server-side bets require connectivity.
func (c *Client) UpdateBet(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	if models.IsOfflineID(id) {
		return c.updateLocalBet(ctx, id, patch)
	}

	if !c.monitor.IsOnline() {
		return nil, fmt.Errorf("cannot update bet %s: %w", id, ErrUnavailableOffline)
	}
	bet, err := c.apiClient.UpdateBet(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.invalidateBets(ctx)
	return bet, nil
}

// DeleteBet removes a bet. Deleting a bet with a temporary id also removes
// its queued create, so nothing is replayed for it later. Server-side bets
// require connectivity.
func (c *Client) DeleteBet(ctx context.Context, id string) error {
	if models.IsOfflineID(id) {
		if err := c.records.RemoveRecord(ctx, id); err != nil {
			return err
		}
		if err := c.queue.Remove(ctx, id); err != nil {
			c.logger.Warn("failed to remove queued write for deleted record", "id", id, "error", err)
		}
		return nil
	}

	if !c.monitor.IsOnline() {
		return fmt.Errorf("cannot delete bet %s: %w", id, ErrUnavailableOffline)
	}
	if err := c.apiClient.DeleteBet(ctx, id); err != nil {
		return err
	}
	c.invalidateBets(ctx)
	return nil
}

func (c *Client) updateLocalBet(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	record, err := c.records.UpdateRecord(ctx, id, func(r *models.LocalBet) {
		patch.Apply(&r.CreateBetData)
	})
	if err != nil {
		return nil, err
	}

	if !record.Synced {
		payload, err := json.Marshal(record.CreateBetData)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal updated payload: %w", err)
		}
		if err := c.queue.UpdatePayload(ctx, id, payload); err != nil && !errors.Is(err, offline.ErrWriteNotFound) {
			return nil, err
		}
	}

	bet := record.Bet()
	return &bet, nil
}

// invalidateBets drops every cached bet listing and the stats aggregate
// after a write the server accepted.
func (c *Client) invalidateBets(ctx context.Context) {
	if err := c.cache.RemoveByPrefix(ctx, keyBets); err != nil {
		c.logger.Warn("failed to invalidate cached bets", "error", err)
	}
	if err := c.cache.Remove(ctx, keyBetStats); err != nil {
		c.logger.Warn("failed to invalidate cached bet stats", "error", err)
	}
}

func (c *Client) refreshBets(ctx context.Context) error {
	bets, err := c.apiClient.GetBets(ctx, pkgapi.BetFilters{})
	if err != nil {
		return fmt.Errorf("failed to refresh bets: %w", err)
	}
	return c.cache.Set(ctx, keyBets, bets, ttlBets)
}

func (c *Client) refreshBetStats(ctx context.Context) error {
	stats, err := c.apiClient.GetBetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh bet stats: %w", err)
	}
	return c.cache.Set(ctx, keyBetStats, stats, ttlBetStats)
}

// mergeBets combines server bets with unsynced local records, newest first.
// Locals can never collide with server ids thanks to the reserved prefix.
func mergeBets(remote []models.Bet, locals []models.LocalBet) []models.Bet {
	merged := make([]models.Bet, 0, len(remote)+len(locals))
	merged = append(merged, remote...)
	for _, local := range locals {
		merged = append(merged, local.Bet())
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}
