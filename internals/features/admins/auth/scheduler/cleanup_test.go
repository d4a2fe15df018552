package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/features/admins/auth/store"
)

func TestSweepOnce_RemovesOnlyIdleSessions(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, st.Set(ctx, &model.AdminSessionModel{AdminSessionTokenHash: "old", AdminSessionLastActivityAt: now.Add(-10 * time.Minute)}))
	require.NoError(t, st.Set(ctx, &model.AdminSessionModel{AdminSessionTokenHash: "fresh", AdminSessionLastActivityAt: now.Add(-time.Minute)}))

	n := SweepOnce(ctx, st, 5*time.Minute, now, zap.NewNop())
	assert.EqualValues(t, 1, n)

	_, err := st.Get(ctx, "fresh")
	assert.NoError(t, err)
	_, err = st.Get(ctx, "old")
	assert.Error(t, err)
}
