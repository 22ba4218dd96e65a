package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagertrack/wagertrack/internal/models"
	pkgapi "github.com/wagertrack/wagertrack/pkg/api"
)

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPingDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.Error(t, client.Ping(context.Background()))
}

func TestBearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.UserProfile{ID: "user-1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetAccessToken("test-token")

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.Ping(context.Background()))
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{
			AccessToken: "access",
			ExpiresIn:   3600,
			UserID:      "user-1",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestCreateBetSendsIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bets", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("Idempotency-Key"))

		var data models.CreateBetData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
		assert.Equal(t, "NBA", data.Sport)

		_ = json.NewEncoder(w).Encode(models.Bet{ID: "server-1", CreateBetData: data})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	bet, err := client.CreateBet(context.Background(), models.CreateBetData{
		Type:   models.BetTypeStraight,
		Sport:  "NBA",
		Amount: 50,
		Odds:   "-110",
	}, "key-123")
	require.NoError(t, err)
	assert.Equal(t, "server-1", bet.ID)
}

func TestCreateBetOmitsEmptyIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Idempotency-Key"]
		assert.False(t, present)
		_ = json.NewEncoder(w).Encode(models.Bet{ID: "server-1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateBet(context.Background(), models.CreateBetData{}, "")
	require.NoError(t, err)
}

func TestGetBetsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bets", r.URL.Path)
		assert.Equal(t, "NBA", r.URL.Query().Get("sport"))
		assert.Equal(t, "PENDING", r.URL.Query().Get("status"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode([]models.Bet{{ID: "b-1"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	bets, err := client.GetBets(context.Background(), pkgapi.BetFilters{
		Sport:  "NBA",
		Status: "PENDING",
		Limit:  10,
	})
	require.NoError(t, err)
	assert.Len(t, bets, 1)
}

func TestUpdateBet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/bets/bet-1", r.URL.Path)

		var patch models.BetPatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.NotNil(t, patch.Status)
		assert.Equal(t, models.BetStatusWon, *patch.Status)

		_ = json.NewEncoder(w).Encode(models.Bet{ID: "bet-1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	status := models.BetStatusWon
	bet, err := client.UpdateBet(context.Background(), "bet-1", models.BetPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "bet-1", bet.ID)
}

func TestDeleteBet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/bets/bet-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.DeleteBet(context.Background(), "bet-1"))
}

func TestGetBettingTrendsDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/analytics/trends", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		_ = json.NewEncoder(w).Encode([]models.TrendPoint{{BetCount: 3}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	trends, err := client.GetBettingTrends(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, 3, trends[0].BetCount)
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Error: "amount must be positive"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateBet(context.Background(), models.CreateBetData{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error (400): amount must be positive")
}

func TestErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 504")
}

func TestUploadReceiptMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/receipts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "bet-1", r.FormValue("betId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		assert.Equal(t, "slip.jpg", header.Filename)

		_ = json.NewEncoder(w).Encode(models.UploadResult{ReceiptID: "r-1", Status: "stored"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetAccessToken("test-token")

	result, err := client.UploadReceipt(context.Background(), models.ReceiptUpload{
		FileName:    "slip.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xFF, 0xD8},
		BetID:       "bet-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", result.ReceiptID)
}

func TestParseNaturalLanguageBet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ai/parse-bet", r.URL.Path)

		var req struct {
			Input string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "50 on the Lakers at -110", req.Input)

		_ = json.NewEncoder(w).Encode(models.CreateBetData{
			Type:   models.BetTypeStraight,
			Sport:  "NBA",
			Amount: 50,
			Odds:   "-110",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	data, err := client.ParseNaturalLanguageBet(context.Background(), "50 on the Lakers at -110")
	require.NoError(t, err)
	assert.Equal(t, 50.0, data.Amount)
	assert.Equal(t, "NBA", data.Sport)
}

func TestAuthHeaderSurvivesRedirect(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.UserProfile{ID: "user-1"})
	}))
	defer target.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+r.URL.Path, http.StatusTemporaryRedirect)
	}))
	defer redirecting.Close()

	client := NewClient(redirecting.URL)
	client.SetAccessToken("test-token")

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
}
