// Package offline holds the durable state created while disconnected: the
// pending-write queue of not-yet-acknowledged mutations and the store of
// records minted with temporary local ids.
package offline

import (
	"encoding/json"
	"time"
)

// WriteKind classifies a queued mutation; the sync coordinator dispatches by
// kind when replaying the queue against the remote API.
type WriteKind string

const (
	KindCreateBet     WriteKind = "create_bet"
	KindUploadReceipt WriteKind = "upload_receipt"
	KindUpdateProfile WriteKind = "update_profile"
)

// PendingWrite is one not-yet-acknowledged mutation. For creates its ID
// matches the local record it originated from, which is how the coordinator
// flips that record's synced flag after a successful replay. IdempotencyKey
// is minted once at enqueue time and sent on every replay attempt, so a
// retried create cannot produce a duplicate server record.
type PendingWrite struct {
	ID             string          `json:"id"`
	Kind           WriteKind       `json:"kind"`
	Payload        json.RawMessage `json:"payload"`
	IdempotencyKey string          `json:"idempotencyKey,omitempty"`
	EnqueuedAt     time.Time       `json:"enqueuedAt"`
	RetryCount     int             `json:"retryCount"`
}
