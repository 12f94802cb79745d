package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopgame/internal/models"
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: "animal", Label: "Animal"},
		{ID: "cor", Label: "Cor"},
	}
}

func answering(id, name string, answers map[string]string) *models.Player {
	p := models.NewPlayer(id, name)
	p.Answers = answers
	return p
}

func TestPrepareLedgerTrimsAndSkipsEmpty(t *testing.T) {
	players := []*models.Player{
		answering("p1", "Ana", map[string]string{"animal": "  Arara  ", "cor": ""}),
		answering("p2", "Bia", map[string]string{"animal": "   "}),
	}

	ledger := PrepareLedger(players, testCategories())

	entry, ok := ledger.Entry("animal", "p1")
	require.True(t, ok)
	assert.Equal(t, "Arara", entry.Answer)
	assert.Equal(t, "Ana", entry.PlayerName)

	_, ok = ledger.Entry("animal", "p2")
	assert.False(t, ok, "whitespace-only answers get no entry")

	_, ok = ledger["cor"]
	assert.False(t, ok, "categories with no answers get no bucket")
}

func TestPrepareLedgerSoloAnswerSkipsVoting(t *testing.T) {
	players := []*models.Player{
		answering("p1", "Ana", map[string]string{"animal": "Arara", "cor": "Azul"}),
		answering("p2", "Bia", map[string]string{"animal": "Anta"}),
	}

	ledger := PrepareLedger(players, testCategories())

	contested, ok := ledger.Entry("animal", "p1")
	require.True(t, ok)
	assert.True(t, contested.NeedsVoting, "two answers in a category get voted on")

	solo, ok := ledger.Entry("cor", "p1")
	require.True(t, ok)
	assert.False(t, solo.NeedsVoting, "a lone answer has nothing to compare against")
}

func TestRecordVoteWaitsForQuorum(t *testing.T) {
	entry := &models.LedgerEntry{Votes: make(map[string]models.Vote), NeedsVoting: true}

	RecordVote(entry, "v1", models.VoteAccept, 2)
	assert.Equal(t, models.VerdictNone, entry.Verdict, "one of two votes is not a verdict")

	RecordVote(entry, "v2", models.VoteAccept, 2)
	assert.Equal(t, models.VerdictAccepted, entry.Verdict)
}

func TestRecordVoteOverwriteDoesNotDoubleCount(t *testing.T) {
	entry := &models.LedgerEntry{Votes: make(map[string]models.Vote), NeedsVoting: true}

	RecordVote(entry, "v1", models.VoteAccept, 2)
	RecordVote(entry, "v1", models.VoteReject, 2)
	require.Len(t, entry.Votes, 1)
	assert.Equal(t, models.VerdictNone, entry.Verdict)

	RecordVote(entry, "v2", models.VoteReject, 2)
	assert.Equal(t, models.VerdictRejected, entry.Verdict)
}

func TestTallyVerdictTieRejects(t *testing.T) {
	votes := map[string]models.Vote{
		"v1": models.VoteAccept,
		"v2": models.VoteReject,
	}
	assert.Equal(t, models.VerdictRejected, TallyVerdict(votes))

	votes["v3"] = models.VoteAccept
	assert.Equal(t, models.VerdictAccepted, TallyVerdict(votes))
}

func TestAllVotesComplete(t *testing.T) {
	assert.False(t, AllVotesComplete(nil), "voting never opened")
	assert.True(t, AllVotesComplete(models.Ledger{}), "nothing to vote on")

	ledger := models.Ledger{
		"animal": {
			"p1": {NeedsVoting: true},
			"p2": {NeedsVoting: false},
		},
	}
	assert.False(t, AllVotesComplete(ledger))

	ledger["animal"]["p1"].Verdict = models.VerdictAccepted
	assert.True(t, AllVotesComplete(ledger), "entries that skip voting never block completion")
}
