package game

import (
	"strings"

	"stopgame/internal/models"
)

// PrepareLedger builds the voting ledger for the round that just ended.
// Every trimmed non-empty answer gets an entry. An answer that is the only
// non-empty one in its category has nothing to be compared against, so it
// skips voting and is resolved by the implicit-acceptance rule at scoring.
func PrepareLedger(players []*models.Player, categories []models.Category) models.Ledger {
	ledger := make(models.Ledger)

	for _, category := range categories {
		answered := 0
		for _, p := range players {
			if strings.TrimSpace(p.Answers[category.ID]) != "" {
				answered++
			}
		}
		if answered == 0 {
			continue
		}

		entries := make(map[string]*models.LedgerEntry, answered)
		for _, p := range players {
			answer := strings.TrimSpace(p.Answers[category.ID])
			if answer == "" {
				continue
			}
			entries[p.ID] = &models.LedgerEntry{
				PlayerName:  p.Name,
				Answer:      answer,
				Votes:       make(map[string]models.Vote),
				NeedsVoting: answered > 1,
			}
		}
		ledger[category.ID] = entries
	}

	return ledger
}

// RecordVote stores one voter's decision on an entry, overwriting any
// earlier vote from the same voter, and derives the verdict once the
// eligible-voter quorum is met. The quorum follows the room as it is at
// vote time, not as it was at round start.
func RecordVote(entry *models.LedgerEntry, voterID string, vote models.Vote, eligibleVoters int) {
	entry.Votes[voterID] = vote
	if len(entry.Votes) >= eligibleVoters {
		entry.Verdict = TallyVerdict(entry.Votes)
	}
}

// TallyVerdict derives accepted/rejected from the recorded votes.
// A tie rejects: an answer needs a strict majority to pass.
func TallyVerdict(votes map[string]models.Vote) models.Verdict {
	accepts, rejects := 0, 0
	for _, v := range votes {
		if v == models.VoteAccept {
			accepts++
		} else {
			rejects++
		}
	}
	if accepts > rejects {
		return models.VerdictAccepted
	}
	return models.VerdictRejected
}

// AllVotesComplete reports whether every entry that needs voting has a
// verdict. A nil ledger means voting never opened.
func AllVotesComplete(ledger models.Ledger) bool {
	if ledger == nil {
		return false
	}
	for _, entries := range ledger {
		for _, entry := range entries {
			if entry.NeedsVoting && entry.Verdict == models.VerdictNone {
				return false
			}
		}
	}
	return true
}
