package processor

import (
	"context"
	"testing"

	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

type voteRow struct {
	VoteID         uint64 `meddler:"vote_id"`
	VoterProfileID uint64 `meddler:"voter_profile_id"`
	TargetContract string `meddler:"target_contract"`
	TargetID       uint64 `meddler:"target_id"`
	IsUpvote       bool   `meddler:"is_upvote"`
	Archived       bool   `meddler:"archived"`
	CreatedAt      int64  `meddler:"created_at"`
	UpdatedAt      int64  `meddler:"updated_at"`
}

func TestChangeSet_Apply(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMigratedDB(t)

	seed, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, Upsert(ctx, seed, "votes", "vote_id",
		&voteRow{VoteID: 1, VoterProfileID: 3, TargetContract: "review", TargetID: 8, IsUpvote: true, CreatedAt: 5, UpdatedAt: 5}))
	require.NoError(t, seed.Commit())

	changes := NewChangeSet[uint64, *voteRow]()
	// current chain state differs in every column, only archived may be written
	changes.Update(1, &voteRow{VoteID: 1, VoterProfileID: 99, TargetContract: "x", TargetID: 99, Archived: true, UpdatedAt: 10},
		"archived", "updated_at")
	// unknown record falls back to a full insert
	changes.Update(2, &voteRow{VoteID: 2, VoterProfileID: 4, TargetContract: "vouch", TargetID: 1, CreatedAt: 7, UpdatedAt: 7},
		"archived")
	changes.Insert(3, &voteRow{VoteID: 3, VoterProfileID: 5, TargetContract: "review", TargetID: 2, CreatedAt: 9, UpdatedAt: 9})

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, changes.Apply(ctx, tx, "votes", "vote_id"))
	require.NoError(t, tx.Commit())

	var rows []*voteRow
	require.NoError(t, meddler.QueryAll(db, &rows, "SELECT * FROM votes ORDER BY vote_id"))
	require.Len(t, rows, 3)

	require.Equal(t, &voteRow{VoteID: 1, VoterProfileID: 3, TargetContract: "review", TargetID: 8,
		IsUpvote: true, Archived: true, CreatedAt: 5, UpdatedAt: 10}, rows[0])
	require.Equal(t, uint64(4), rows[1].VoterProfileID)
	require.Equal(t, "vouch", rows[1].TargetContract)
	require.Equal(t, uint64(5), rows[2].VoterProfileID)
}

func TestUpsert_Overwrites(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMigratedDB(t)

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, Upsert(ctx, tx, "votes", "vote_id", &voteRow{VoteID: 1, TargetContract: "review", CreatedAt: 1}))
	require.NoError(t, Upsert(ctx, tx, "votes", "vote_id", &voteRow{VoteID: 1, TargetContract: "discussion", CreatedAt: 2}))
	require.NoError(t, tx.Commit())

	row := new(voteRow)
	require.NoError(t, meddler.QueryRow(db, row, "SELECT * FROM votes WHERE vote_id = 1"))
	require.Equal(t, "discussion", row.TargetContract)
	require.Equal(t, int64(2), row.CreatedAt)
}

func TestJournal_WriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMigratedDB(t)

	var journal Journal
	journal.Add("ReviewCreated", 42, &store.RawEvent{ID: 1})
	journal.Add("ReviewArchived", 42, &store.RawEvent{ID: 2})

	for range 2 {
		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, journal.Write(ctx, tx))
		require.NoError(t, tx.Commit())
	}

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM domain_events WHERE domain_entity_id = 42").Scan(&n))
	require.Equal(t, 2, n)
}

func TestUpdateColumns_MissingKey(t *testing.T) {
	db := testutil.NewMigratedDB(t)

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback() //nolint:errcheck

	_, err = UpdateColumns(context.Background(), tx, "votes", "id", &voteRow{VoteID: 1}, []string{"archived"})
	require.ErrorContains(t, err, "has no id column")
}
