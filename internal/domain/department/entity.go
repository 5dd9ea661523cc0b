package department

import "time"

// TransferStatusOutgoing is the status string written to BOTH the source and
// destination department on every transfer. Not direction-specific; this
// mirrors the shipped behavior and is pinned by tests. Do not "fix" it
// without product sign-off.
const TransferStatusOutgoing = "outgoing"

// LedgerEntry is one append-only movement record. The JSON keys are part of
// the persisted ledger format.
type LedgerEntry struct {
	UserID     string    `json:"userId"`
	Department string    `json:"department"`
	Timestamp  time.Time `json:"timestamp"`
}

// Department is scoped to the HR user that owns it; (hr_id, name) is unique.
// Ingoing and Outgoing are append-only ledgers, never pruned.
type Department struct {
	ID        string
	HRID      string
	Name      string
	Ingoing   []LedgerEntry
	Outgoing  []LedgerEntry
	Promotion *string
	Transfer  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
