// Package api implements the HTTP client for the WagerTrack backend. It is
// the engine's only window onto the remote authority; everything above it
// treats these calls as opaque, idempotent-safe operations.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/wagertrack/wagertrack/internal/models"
	"github.com/wagertrack/wagertrack/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the remote API surface the engine consumes. One method per
// operation; every method is safe to retry from the coordinator's
// perspective (creates carry a client-minted idempotency key).
type ClientAPI interface {
	// Ping probes the health endpoint; used by the connectivity monitor.
	Ping(ctx context.Context) error

	// SetAccessToken installs the bearer token attached to every
	// authenticated request. An empty token clears it.
	SetAccessToken(token string)

	Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Logout(ctx context.Context) error

	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error)

	// CreateBet creates a bet. idempotencyKey deduplicates retried creates
	// server-side; pass the key minted when the write was first attempted.
	CreateBet(ctx context.Context, data models.CreateBetData, idempotencyKey string) (*models.Bet, error)
	GetBets(ctx context.Context, filters api.BetFilters) ([]models.Bet, error)
	GetBetStats(ctx context.Context) (*models.BetStats, error)
	UpdateBet(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error)
	DeleteBet(ctx context.Context, id string) error

	GetAnalyticsOverview(ctx context.Context) (*models.AnalyticsOverview, error)
	GetBettingTrends(ctx context.Context, days int) ([]models.TrendPoint, error)
	GetSportBreakdown(ctx context.Context) ([]models.SportStat, error)

	GetBettingInsights(ctx context.Context) (*models.InsightReport, error)
	GetBettingPatterns(ctx context.Context) (*models.InsightReport, error)
	GetBettingOpportunities(ctx context.Context) (*models.InsightReport, error)
	GetPerformanceAnalysis(ctx context.Context) (*models.InsightReport, error)
	ParseNaturalLanguageBet(ctx context.Context, input string) (*models.CreateBetData, error)

	UploadReceipt(ctx context.Context, receipt models.ReceiptUpload) (*models.UploadResult, error)
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu          sync.RWMutex
	accessToken string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken installs the bearer token for subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Ping probes the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil, nil); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp, nil); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns session tokens.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp, nil); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout invalidates the current session server-side.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/users/profile", nil, &profile, nil); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doRequest(ctx, http.MethodPatch, "/api/v1/users/profile", update, &profile, nil); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &profile, nil
}

// CreateBet creates a bet. The idempotency key rides in a header so the
// server can drop duplicate replays of the same queued create.
func (c *Client) CreateBet(ctx context.Context, data models.CreateBetData, idempotencyKey string) (*models.Bet, error) {
	var header http.Header
	if idempotencyKey != "" {
		header = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}

	var bet models.Bet
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/bets", data, &bet, header); err != nil {
		return nil, fmt.Errorf("create bet request failed: %w", err)
	}
	return &bet, nil
}

// GetBets lists bets matching the filters.
func (c *Client) GetBets(ctx context.Context, filters api.BetFilters) ([]models.Bet, error) {
	path := "/api/v1/bets"
	if query := filters.Query().Encode(); query != "" {
		path += "?" + query
	}

	var bets []models.Bet
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &bets, nil); err != nil {
		return nil, fmt.Errorf("get bets request failed: %w", err)
	}
	return bets, nil
}

// GetBetStats fetches the aggregate bet summary.
func (c *Client) GetBetStats(ctx context.Context) (*models.BetStats, error) {
	var stats models.BetStats
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/bets/stats", nil, &stats, nil); err != nil {
		return nil, fmt.Errorf("get bet stats request failed: %w", err)
	}
	return &stats, nil
}

// UpdateBet applies a partial update to a server-side bet.
func (c *Client) UpdateBet(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	var bet models.Bet
	path := "/api/v1/bets/" + id
	if err := c.doRequest(ctx, http.MethodPatch, path, patch, &bet, nil); err != nil {
		return nil, fmt.Errorf("update bet request failed: %w", err)
	}
	return &bet, nil
}

// DeleteBet removes a server-side bet.
func (c *Client) DeleteBet(ctx context.Context, id string) error {
	path := "/api/v1/bets/" + id
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete bet request failed: %w", err)
	}
	return nil
}

// GetAnalyticsOverview fetches the all-time performance summary.
func (c *Client) GetAnalyticsOverview(ctx context.Context) (*models.AnalyticsOverview, error) {
	var overview models.AnalyticsOverview
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/analytics/overview", nil, &overview, nil); err != nil {
		return nil, fmt.Errorf("get analytics overview request failed: %w", err)
	}
	return &overview, nil
}

// GetBettingTrends fetches the daily trend series for the last days days.
// days <= 0 lets the server pick its default window.
func (c *Client) GetBettingTrends(ctx context.Context, days int) ([]models.TrendPoint, error) {
	path := "/api/v1/analytics/trends"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}

	var trends []models.TrendPoint
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &trends, nil); err != nil {
		return nil, fmt.Errorf("get betting trends request failed: %w", err)
	}
	return trends, nil
}

// GetSportBreakdown fetches per-sport performance.
func (c *Client) GetSportBreakdown(ctx context.Context) ([]models.SportStat, error) {
	var breakdown []models.SportStat
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/analytics/sports", nil, &breakdown, nil); err != nil {
		return nil, fmt.Errorf("get sport breakdown request failed: %w", err)
	}
	return breakdown, nil
}

// GetBettingInsights fetches AI-generated insights.
func (c *Client) GetBettingInsights(ctx context.Context) (*models.InsightReport, error) {
	return c.getInsightReport(ctx, "/api/v1/ai/insights", "get betting insights")
}

// GetBettingPatterns fetches AI-detected behavioral patterns.
func (c *Client) GetBettingPatterns(ctx context.Context) (*models.InsightReport, error) {
	return c.getInsightReport(ctx, "/api/v1/ai/patterns", "get betting patterns")
}

// GetBettingOpportunities fetches AI-suggested opportunities.
func (c *Client) GetBettingOpportunities(ctx context.Context) (*models.InsightReport, error) {
	return c.getInsightReport(ctx, "/api/v1/ai/opportunities", "get betting opportunities")
}

// GetPerformanceAnalysis fetches the AI performance review.
func (c *Client) GetPerformanceAnalysis(ctx context.Context) (*models.InsightReport, error) {
	return c.getInsightReport(ctx, "/api/v1/ai/performance", "get performance analysis")
}

func (c *Client) getInsightReport(ctx context.Context, path, what string) (*models.InsightReport, error) {
	var report models.InsightReport
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &report, nil); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", what, err)
	}
	return &report, nil
}

// ParseNaturalLanguageBet asks the server's AI to turn free text into a
// structured bet payload.
func (c *Client) ParseNaturalLanguageBet(ctx context.Context, input string) (*models.CreateBetData, error) {
	req := struct {
		Input string `json:"input"`
	}{Input: input}

	var data models.CreateBetData
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/ai/parse-bet", req, &data, nil); err != nil {
		return nil, fmt.Errorf("parse bet request failed: %w", err)
	}
	return &data, nil
}

// UploadReceipt uploads a bet-slip image as multipart form data.
func (c *Client) UploadReceipt(ctx context.Context, receipt models.ReceiptUpload) (*models.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", receipt.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(receipt.Data); err != nil {
		return nil, fmt.Errorf("failed to write receipt data: %w", err)
	}
	if receipt.BetID != "" {
		if err := writer.WriteField("betId", receipt.BetID); err != nil {
			return nil, fmt.Errorf("failed to write betId field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/receipts", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var result models.UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("upload receipt request failed: %w", err)
	}
	return &result, nil
}

// doRequest performs a JSON request against the API.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any, header http.Header) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, result)
}

// do executes the prepared request and decodes the response.
func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
