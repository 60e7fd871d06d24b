package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/store"
)

func ingestChase(t *testing.T) (ctx context.Context, st store.Store, pendingHash string) {
	t.Helper()
	cfg, st := setupProject(t)
	ctx = context.Background()

	require.NoError(t, st.PutRule(ctx, model.SplitRule{
		UserID: "alice", Category: "Travel", Need: false, SplitPercent: 50,
	}))
	dropInbox(t, cfg, "alice_chase.csv", chaseCSV)
	require.NoError(t, runIngest(ctx, cfg, st, nil))

	pending, err := st.ListTransactions(ctx, store.TransactionQuery{
		UserID: "alice", Status: model.ReviewPending,
	})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	return ctx, st, pending[0].ContentHash
}

func TestRunReview_Shared(t *testing.T) {
	ctx, st, hash := ingestChase(t)

	tx, err := runReview(ctx, st, hash, true, "")
	require.NoError(t, err)
	assert.Equal(t, model.SplitYes, tx.SplitDecided)
	assert.Equal(t, model.ReviewReviewed, tx.ReviewStatus)

	got, err := st.GetTransaction(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, model.SplitYes, got.SplitDecided)
}

func TestRunReview_CategoryChangeRecomputesSplit(t *testing.T) {
	ctx, st, hash := ingestChase(t)

	before, err := st.GetTransaction(ctx, hash)
	require.NoError(t, err)
	require.NotNil(t, before.AfterSplitAmount) // Travel rule applied at ingest

	// Reclassify to a category without a rule: allocation must clear.
	tx, err := runReview(ctx, st, hash, false, "Misc")
	require.NoError(t, err)
	assert.Equal(t, "Misc", tx.Category)
	assert.Nil(t, tx.AfterSplitAmount)
	assert.Nil(t, tx.PartnerSplitAmount)
	assert.Equal(t, model.SplitNo, tx.SplitDecided)

	// The content hash is the storage key; it does not change on review.
	got, err := st.GetTransaction(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "Misc", got.Category)
}

func TestRunReview_NotFound(t *testing.T) {
	ctx, st, _ := ingestChase(t)
	_, err := runReview(ctx, st, "nope", true, "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
