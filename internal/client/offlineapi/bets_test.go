package offlineapi

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagertrack/wagertrack/internal/client/api"
	"github.com/wagertrack/wagertrack/internal/client/cache"
	"github.com/wagertrack/wagertrack/internal/models"
	pkgapi "github.com/wagertrack/wagertrack/pkg/api"
)

func straightBet(sport string, amount float64) models.CreateBetData {
	return models.CreateBetData{
		Type:   models.BetTypeStraight,
		Sport:  sport,
		Amount: amount,
		Odds:   "-110",
	}
}

func TestCreateBetOnline(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		CreateBetFunc: func(ctx context.Context, data models.CreateBetData, idempotencyKey string) (*models.Bet, error) {
			// Direct creates carry no idempotency key; the caller sees the
			// outcome immediately, so there is nothing to replay.
			assert.Empty(t, idempotencyKey)
			return &models.Bet{ID: "server-1", CreateBetData: data}, nil
		},
	}
	f := newTestClient(t, apiClient)

	// A stale cached listing must not survive a server-accepted write.
	require.NoError(t, f.cache.Set(ctx, keyBets, []models.Bet{}, ttlBets))

	bet, err := f.client.CreateBet(ctx, straightBet("NBA", 50))
	require.NoError(t, err)
	assert.Equal(t, "server-1", bet.ID)
	assert.False(t, models.IsOfflineID(bet.ID))

	// No local record, no queued write.
	all, err := f.records.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var cached []models.Bet
	assert.Equal(t, cache.Miss, f.cache.Get(ctx, keyBets, &cached), "listing invalidated")
}

func TestCreateBetOffline(t *testing.T) {
	ctx := context.Background()

	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	bet, err := f.client.CreateBet(ctx, straightBet("NBA", 50))
	require.NoError(t, err)
	assert.True(t, models.IsOfflineID(bet.ID))
	assert.Equal(t, models.BetStatusPending, bet.Status)

	items, err := f.queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, bet.ID, items[0].ID)
}

func TestCreateBetFallsBackWhenRemoteFails(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		CreateBetFunc: func(ctx context.Context, data models.CreateBetData, idempotencyKey string) (*models.Bet, error) {
			return nil, assert.AnError
		},
	}
	f := newTestClient(t, apiClient)

	// Online but the server rejects; the bet is not lost.
	bet, err := f.client.CreateBet(ctx, straightBet("NBA", 50))
	require.NoError(t, err)
	assert.True(t, models.IsOfflineID(bet.ID))

	n, err := f.queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGetBetsMergesLocalsNewestFirst(t *testing.T) {
	ctx := context.Background()

	now := time.Now()
	remote := []models.Bet{
		{ID: "server-1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "server-2", CreatedAt: now.Add(-1 * time.Hour)},
	}
	apiClient := &api.ClientAPIMock{
		GetBetsFunc: func(ctx context.Context, filters pkgapi.BetFilters) ([]models.Bet, error) {
			return remote, nil
		},
	}
	f := newTestClient(t, apiClient)

	// An unsynced local record created now sorts ahead of older server bets.
	local, _, err := f.records.CreateRecord(ctx, straightBet("NBA", 50))
	require.NoError(t, err)

	bets, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)
	require.Len(t, bets, 3)
	assert.Equal(t, local.ID, bets[0].ID)
	assert.Equal(t, "server-2", bets[1].ID)
	assert.Equal(t, "server-1", bets[2].ID)
}

func TestGetBetsOfflineServesCache(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		GetBetsFunc: func(ctx context.Context, filters pkgapi.BetFilters) ([]models.Bet, error) {
			return []models.Bet{{ID: "server-1"}}, nil
		},
	}
	f := newTestClient(t, apiClient)

	// One online fetch primes the cache.
	_, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)

	f.monitor.SetOnline(false)

	bets, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "server-1", bets[0].ID)
	assert.Len(t, apiClient.GetBetsCalls(), 1, "offline read never hits the server")
}

func TestGetBetsCachePerFilter(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		GetBetsFunc: func(ctx context.Context, filters pkgapi.BetFilters) ([]models.Bet, error) {
			if filters.Sport == "NBA" {
				return []models.Bet{{ID: "nba-1"}}, nil
			}
			return []models.Bet{{ID: "all-1"}, {ID: "all-2"}}, nil
		},
	}
	f := newTestClient(t, apiClient)

	_, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)
	_, err = f.client.GetBets(ctx, pkgapi.BetFilters{Sport: "NBA"})
	require.NoError(t, err)

	f.monitor.SetOnline(false)

	nba, err := f.client.GetBets(ctx, pkgapi.BetFilters{Sport: "NBA"})
	require.NoError(t, err)
	require.Len(t, nba, 1)
	assert.Equal(t, "nba-1", nba[0].ID)

	all, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetBetsOfflineLocalsOnly(t *testing.T) {
	ctx := context.Background()

	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	local, err := f.client.CreateBet(ctx, straightBet("NBA", 50))
	require.NoError(t, err)

	bets, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, local.ID, bets[0].ID)
}

func TestGetBetsUnavailableOffline(t *testing.T) {
	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	_, err := f.client.GetBets(context.Background(), pkgapi.BetFilters{})
	assert.ErrorIs(t, err, ErrUnavailableOffline)
}

func TestGetBetsFetchFailureFallsBack(t *testing.T) {
	ctx := context.Background()

	healthy := true
	apiClient := &api.ClientAPIMock{
		GetBetsFunc: func(ctx context.Context, filters pkgapi.BetFilters) ([]models.Bet, error) {
			if !healthy {
				return nil, assert.AnError
			}
			return []models.Bet{{ID: "server-1"}}, nil
		},
	}
	f := newTestClient(t, apiClient)

	_, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)

	// Still "online" but the request fails; the cached copy serves.
	healthy = false
	bets, err := f.client.GetBets(ctx, pkgapi.BetFilters{})
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "server-1", bets[0].ID)
}

func TestUpdateBetLocalRewritesQueuedPayload(t *testing.T) {
	ctx := context.Background()

	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	local, err := f.client.CreateBet(ctx, straightBet("NBA", 50))
	require.NoError(t, err)

	amount := 75.0
	updated, err := f.client.UpdateBet(ctx, local.ID, models.BetPatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Amount)

	// The queued create now carries the edit, so replay cannot resurrect
	// the old amount.
	items, err := f.queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var payload models.CreateBetData
	require.NoError(t, json.Unmarshal(items[0].Payload, &payload))
	assert.Equal(t, 75.0, payload.Amount)
}

func TestUpdateBetServerIDOffline(t *testing.T) {
	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	amount := 75.0
	_, err := f.client.UpdateBet(context.Background(), "server-1", models.BetPatch{Amount: &amount})
	assert.ErrorIs(t, err, ErrUnavailableOffline)
}

func TestUpdateBetServerIDOnline(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		UpdateBetFunc: func(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
			return &models.Bet{ID: id}, nil
		},
	}
	f := newTestClient(t, apiClient)

	require.NoError(t, f.cache.Set(ctx, keyBetStats, &models.BetStats{}, ttlBetStats))

	status := models.BetStatusWon
	bet, err := f.client.UpdateBet(ctx, "server-1", models.BetPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "server-1", bet.ID)

	var stats models.BetStats
	assert.Equal(t, cache.Miss, f.cache.Get(ctx, keyBetStats, &stats), "stats invalidated")
}

func TestDeleteBetLocalRemovesQueuedWrite(t *testing.T) {
	ctx := context.Background()

	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	local, err := f.client.CreateBet(ctx, straightBet("NBA", 50))
	require.NoError(t, err)

	require.NoError(t, f.client.DeleteBet(ctx, local.ID))

	all, err := f.records.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	n, err := f.queue.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing left to replay for a deleted local bet")
}

func TestDeleteBetServerIDOffline(t *testing.T) {
	f := newTestClient(t, &api.ClientAPIMock{})
	f.monitor.SetOnline(false)

	err := f.client.DeleteBet(context.Background(), "server-1")
	assert.ErrorIs(t, err, ErrUnavailableOffline)
}
