package models

import "maps"

// Vote is a single accept/reject decision on another player's answer
type Vote string

const (
	VoteAccept Vote = "accept"
	VoteReject Vote = "reject"
)

// Verdict is the derived outcome for a ledger entry once every eligible
// voter has weighed in
type Verdict string

const (
	VerdictNone     Verdict = ""
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
)

// LedgerEntry tracks the votes on one player's answer in one category.
// Votes are keyed by voter id; a repeat vote from the same voter
// overwrites the earlier one.
type LedgerEntry struct {
	PlayerName  string          `json:"playerName"`
	Answer      string          `json:"answer"`
	Votes       map[string]Vote `json:"votes"`
	NeedsVoting bool            `json:"needsVoting"`
	Verdict     Verdict         `json:"result,omitempty"`
}

// Ledger is the per-round record of answers and their vote tallies,
// keyed by category id, then by the answering player's id.
type Ledger map[string]map[string]*LedgerEntry

// Entry looks up the ledger entry for a (category, player) pair
func (l Ledger) Entry(categoryID, playerID string) (*LedgerEntry, bool) {
	entries, ok := l[categoryID]
	if !ok {
		return nil, false
	}
	entry, ok := entries[playerID]
	return entry, ok
}

// Clone deep-copies the ledger so a snapshot can leave the room lock
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	for categoryID, entries := range l {
		cloned := make(map[string]*LedgerEntry, len(entries))
		for playerID, entry := range entries {
			cp := *entry
			cp.Votes = maps.Clone(entry.Votes)
			cloned[playerID] = &cp
		}
		out[categoryID] = cloned
	}
	return out
}
