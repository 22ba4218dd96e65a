package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOfflineID(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	id := NewOfflineID(now)
	assert.True(t, IsOfflineID(id))
	assert.Contains(t, id, "offline_")

	// Two ids minted in the same instant must still differ.
	other := NewOfflineID(now)
	assert.NotEqual(t, id, other)
}

func TestIsOfflineID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{
			name: "offline id",
			id:   NewOfflineID(time.Now()),
			want: true,
		},
		{
			name: "server id",
			id:   "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5",
			want: false,
		},
		{
			name: "empty",
			id:   "",
			want: false,
		},
		{
			name: "prefix only",
			id:   "offline_",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOfflineID(tt.id))
		})
	}
}

func TestLocalBetBet(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	local := LocalBet{
		CreateBetData: CreateBetData{
			Type:   BetTypeStraight,
			Sport:  "NBA",
			Amount: 50,
			Odds:   "-110",
		},
		ID:        NewOfflineID(createdAt),
		CreatedAt: createdAt,
	}

	bet := local.Bet()
	assert.Equal(t, local.ID, bet.ID)
	assert.Equal(t, createdAt, bet.CreatedAt)
	assert.Equal(t, "NBA", bet.Sport)
	// Status defaults to pending when the record carries none.
	assert.Equal(t, BetStatusPending, bet.Status)
}

func TestBetPatchApply(t *testing.T) {
	data := CreateBetData{
		Type:   BetTypeStraight,
		Sport:  "NBA",
		Amount: 50,
		Odds:   "-110",
		Status: BetStatusPending,
	}

	amount := 75.0
	status := BetStatusWon
	patch := BetPatch{
		Amount: &amount,
		Status: &status,
	}
	patch.Apply(&data)

	assert.Equal(t, 75.0, data.Amount)
	assert.Equal(t, BetStatusWon, data.Status)
	// Untouched fields keep their values.
	assert.Equal(t, "NBA", data.Sport)
	assert.Equal(t, "-110", data.Odds)
}

func TestProfileUpdateApply(t *testing.T) {
	profile := UserProfile{
		ID:    "user-1",
		Email: "alice@example.com",
		Name:  "Alice",
	}

	name := "Alice Smith"
	update := ProfileUpdate{
		Name:        &name,
		Preferences: map[string]string{"currency": "EUR"},
	}
	update.Apply(&profile)

	require.NotNil(t, profile.Preferences)
	assert.Equal(t, "Alice Smith", profile.Name)
	assert.Equal(t, "EUR", profile.Preferences["currency"])
	assert.Equal(t, "alice@example.com", profile.Email)
}
