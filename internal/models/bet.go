package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BetType classifies the overall structure of a bet.
type BetType string

const (
	BetTypeStraight BetType = "STRAIGHT"
	BetTypeParlay   BetType = "PARLAY"
	BetTypeProp     BetType = "PROP"
)

// BetStatus tracks settlement state. New bets default to pending.
type BetStatus string

const (
	BetStatusPending   BetStatus = "PENDING"
	BetStatusWon       BetStatus = "WON"
	BetStatusLost      BetStatus = "LOST"
	BetStatusPushed    BetStatus = "PUSHED"
	BetStatusCancelled BetStatus = "CANCELLED"
)

// LegType classifies a single leg within a parlay or prop bet.
type LegType string

const (
	LegTypeMoneyline LegType = "MONEYLINE"
	LegTypeSpread    LegType = "SPREAD"
	LegTypeTotal     LegType = "TOTAL"
	LegTypeProp      LegType = "PROP"
)

// BetLeg is a single selection within a multi-leg bet.
type BetLeg struct {
	GameID          string  `json:"gameId,omitempty"`
	Type            LegType `json:"type"`
	Selection       string  `json:"selection"`
	Odds            string  `json:"odds"`
	Handicap        float64 `json:"handicap,omitempty"`
	Total           float64 `json:"total,omitempty"`
	PropDescription string  `json:"propDescription,omitempty"`
}

// CreateBetData is the payload for creating a bet. It is the domain payload
// carried by local records and queued pending writes.
type CreateBetData struct {
	Type        BetType   `json:"type"`
	Sport       string    `json:"sport"`
	Amount      float64   `json:"amount"`
	Odds        string    `json:"odds"`
	Status      BetStatus `json:"status,omitempty"`
	Description string    `json:"description,omitempty"`
	GameID      string    `json:"gameId,omitempty"`
	Legs        []BetLeg  `json:"legs,omitempty"`
}

// Bet is a bet record as returned by the server or synthesized from a local
// record. Server-issued ids never carry the offline prefix.
type Bet struct {
	CreateBetData

	ID        string    `json:"id"`
	Payout    *float64  `json:"payout,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// BetPatch carries a partial update of a bet. Nil fields are left untouched.
type BetPatch struct {
	Type        *BetType   `json:"type,omitempty"`
	Sport       *string    `json:"sport,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Odds        *string    `json:"odds,omitempty"`
	Status      *BetStatus `json:"status,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// Apply writes the non-nil patch fields onto data.
func (p BetPatch) Apply(data *CreateBetData) {
	if p.Type != nil {
		data.Type = *p.Type
	}
	if p.Sport != nil {
		data.Sport = *p.Sport
	}
	if p.Amount != nil {
		data.Amount = *p.Amount
	}
	if p.Odds != nil {
		data.Odds = *p.Odds
	}
	if p.Status != nil {
		data.Status = *p.Status
	}
	if p.Description != nil {
		data.Description = *p.Description
	}
}

// LocalBet is a bet created while the client was offline (or after a failed
// remote create). It lives in local storage until the sync coordinator
// replays the matching pending write, at which point Synced flips to true.
type LocalBet struct {
	CreateBetData

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Synced    bool      `json:"synced"`
}

// Bet converts a local record into the common Bet shape so callers see one
// result type regardless of where a bet came from. The offline id prefix is
// the only way to tell the two apart.
func (b LocalBet) Bet() Bet {
	data := b.CreateBetData
	if data.Status == "" {
		data.Status = BetStatusPending
	}
	return Bet{
		CreateBetData: data,
		ID:            b.ID,
		CreatedAt:     b.CreatedAt,
	}
}

// OfflineIDPrefix marks locally-minted ids. The server never issues ids with
// this prefix, so the two id spaces cannot collide.
const OfflineIDPrefix = "offline_"

// NewOfflineID mints a collision-resistant temporary id: reserved prefix,
// creation timestamp, and a random suffix so records created in the same
// instant stay distinct.
func NewOfflineID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s%d_%s", OfflineIDPrefix, now.UnixNano(), suffix)
}

// IsOfflineID reports whether id was minted locally.
func IsOfflineID(id string) bool {
	return strings.HasPrefix(id, OfflineIDPrefix)
}

// BetStats is the aggregate summary the server computes over a user's bets.
type BetStats struct {
	TotalBets    int     `json:"totalBets"`
	PendingBets  int     `json:"pendingBets"`
	TotalWagered float64 `json:"totalWagered"`
	TotalProfit  float64 `json:"totalProfit"`
	WinRate      float64 `json:"winRate"`
	ROI          float64 `json:"roi"`
}
