package offlineapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wagertrack/wagertrack/internal/client/cache"
	"github.com/wagertrack/wagertrack/internal/client/offline"
	"github.com/wagertrack/wagertrack/internal/models"
)

// Cache keys and TTLs for the profile, analytics and AI domains. AI reports
// are expensive to generate server-side, so they get longer windows; the
// profile barely changes and is kept until explicitly replaced.
const (
	keyProfile       = "profile"
	keyOverview      = "analytics_overview"
	keyTrends        = "betting_trends"
	keySports        = "sport_breakdown"
	keyInsights      = "ai_insights"
	keyPatterns      = "ai_patterns"
	keyOpportunities = "ai_opportunities"
	keyPerformance   = "ai_performance"

	ttlOverview      = 30 * time.Minute
	ttlTrends        = 60 * time.Minute
	ttlSports        = 60 * time.Minute
	ttlInsights      = 60 * time.Minute
	ttlPatterns      = 120 * time.Minute
	ttlOpportunities = 30 * time.Minute
	ttlPerformance   = 60 * time.Minute
)

// GetProfile fetches the user profile. The cached copy never expires; it is
// replaced on fetch and patched by queued offline updates.
func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return readThrough(ctx, c, keyProfile, 0, c.apiClient.GetProfile)
}

// UpdateProfile applies a partial profile update. Offline, the update is
// queued for replay and the cached profile is patched in place so the user
// sees their change immediately. With no cached copy to patch, the update is
// still queued and ErrProfileUpdateQueued is returned so the caller can tell
// deferred from done.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	if c.monitor.IsOnline() {
		profile, err := c.apiClient.UpdateProfile(ctx, update)
		if err == nil {
			if cacheErr := c.cache.Set(ctx, keyProfile, profile, 0); cacheErr != nil {
				c.logger.Warn("failed to cache updated profile", "error", cacheErr)
			}
			return profile, nil
		}
		c.logger.Warn("remote profile update failed, queueing", "error", err)
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile update: %w", err)
	}
	write := &offline.PendingWrite{
		ID:             uuid.NewString(),
		Kind:           offline.KindUpdateProfile,
		Payload:        payload,
		IdempotencyKey: uuid.NewString(),
	}
	if err := c.queue.Enqueue(ctx, write); err != nil {
		return nil, fmt.Errorf("failed to queue profile update: %w", err)
	}

	// Patch the cached copy so reads reflect the pending change.
	var profile models.UserProfile
	if outcome := c.cache.Get(ctx, keyProfile, &profile); outcome != cache.Hit {
		return nil, ErrProfileUpdateQueued
	}
	update.Apply(&profile)
	if err := c.cache.Set(ctx, keyProfile, &profile, 0); err != nil {
		c.logger.Warn("failed to cache patched profile", "error", err)
	}
	return &profile, nil
}

// GetAnalyticsOverview fetches the all-time summary, cache-backed.
func (c *Client) GetAnalyticsOverview(ctx context.Context) (*models.AnalyticsOverview, error) {
	return readThrough(ctx, c, keyOverview, ttlOverview, c.apiClient.GetAnalyticsOverview)
}

// GetBettingTrends fetches the daily trend series for the last days days,
// cache-backed per window.
func (c *Client) GetBettingTrends(ctx context.Context, days int) ([]models.TrendPoint, error) {
	key := fmt.Sprintf("%s_%d", keyTrends, days)
	return readThrough(ctx, c, key, ttlTrends, func(ctx context.Context) ([]models.TrendPoint, error) {
		return c.apiClient.GetBettingTrends(ctx, days)
	})
}

// GetSportBreakdown fetches per-sport performance, cache-backed.
func (c *Client) GetSportBreakdown(ctx context.Context) ([]models.SportStat, error) {
	return readThrough(ctx, c, keySports, ttlSports, c.apiClient.GetSportBreakdown)
}

// GetBettingInsights fetches AI insights, cache-backed.
func (c *Client) GetBettingInsights(ctx context.Context) (*models.InsightReport, error) {
	return readThrough(ctx, c, keyInsights, ttlInsights, c.apiClient.GetBettingInsights)
}

// GetBettingPatterns fetches AI-detected patterns, cache-backed.
func (c *Client) GetBettingPatterns(ctx context.Context) (*models.InsightReport, error) {
	return readThrough(ctx, c, keyPatterns, ttlPatterns, c.apiClient.GetBettingPatterns)
}

// GetBettingOpportunities fetches AI-suggested opportunities, cache-backed.
func (c *Client) GetBettingOpportunities(ctx context.Context) (*models.InsightReport, error) {
	return readThrough(ctx, c, keyOpportunities, ttlOpportunities, c.apiClient.GetBettingOpportunities)
}

// GetPerformanceAnalysis fetches the AI performance review, cache-backed.
func (c *Client) GetPerformanceAnalysis(ctx context.Context) (*models.InsightReport, error) {
	return readThrough(ctx, c, keyPerformance, ttlPerformance, c.apiClient.GetPerformanceAnalysis)
}

// ParseNaturalLanguageBet turns free text into a structured bet payload.
// Parsing happens server-side, so this is the one read with no offline
// fallback.
func (c *Client) ParseNaturalLanguageBet(ctx context.Context, input string) (*models.CreateBetData, error) {
	if !c.monitor.IsOnline() {
		return nil, fmt.Errorf("cannot parse bet: %w", ErrUnavailableOffline)
	}
	return c.apiClient.ParseNaturalLanguageBet(ctx, input)
}

// UploadReceipt uploads a bet-slip image. Offline (or when the upload
// fails), the receipt is queued for the next sync and ErrReceiptQueued is
// returned so the caller can tell deferred from done.
func (c *Client) UploadReceipt(ctx context.Context, receipt models.ReceiptUpload) (*models.UploadResult, error) {
	var uploadErr error
	if c.monitor.IsOnline() {
		result, err := c.apiClient.UploadReceipt(ctx, receipt)
		if err == nil {
			return result, nil
		}
		uploadErr = err
		c.logger.Warn("receipt upload failed, queueing", "error", err)
	}

	payload, err := json.Marshal(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}
	write := &offline.PendingWrite{
		ID:             uuid.NewString(),
		Kind:           offline.KindUploadReceipt,
		Payload:        payload,
		IdempotencyKey: uuid.NewString(),
	}
	if err := c.queue.Enqueue(ctx, write); err != nil {
		if uploadErr != nil {
			return nil, fmt.Errorf("upload failed (%v) and queueing failed: %w", uploadErr, err)
		}
		return nil, fmt.Errorf("failed to queue receipt upload: %w", err)
	}
	return nil, ErrReceiptQueued
}

func (c *Client) refreshProfile(ctx context.Context) error {
	profile, err := c.apiClient.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh profile: %w", err)
	}
	return c.cache.Set(ctx, keyProfile, profile, 0)
}

func (c *Client) refreshAnalytics(ctx context.Context) error {
	overview, err := c.apiClient.GetAnalyticsOverview(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh analytics overview: %w", err)
	}
	if err := c.cache.Set(ctx, keyOverview, overview, ttlOverview); err != nil {
		return err
	}

	breakdown, err := c.apiClient.GetSportBreakdown(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh sport breakdown: %w", err)
	}
	return c.cache.Set(ctx, keySports, breakdown, ttlSports)
}

func (c *Client) refreshInsights(ctx context.Context) error {
	insights, err := c.apiClient.GetBettingInsights(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh insights: %w", err)
	}
	return c.cache.Set(ctx, keyInsights, insights, ttlInsights)
}
