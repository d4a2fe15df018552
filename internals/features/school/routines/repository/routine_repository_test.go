//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolsite_backend/internals/databases/dbtest"
	"schoolsite_backend/internals/features/school/routines/model"
	"schoolsite_backend/internals/features/school/routines/repository"
	"schoolsite_backend/internals/helpers/apperror"
	helperRepo "schoolsite_backend/internals/helpers/repository"
)

func setup(t *testing.T) (*repository.RoutineRepository, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t, "routine_rows", "routines")
	return repository.NewRoutineRepository(db), db
}

func routine(class string, rows ...model.RoutineRowModel) *model.RoutineModel {
	for i := range rows {
		rows[i].RoutineRowPosition = i
	}
	return &model.RoutineModel{RoutineClassName: class, Rows: rows}
}

func row(at string, subjects ...string) model.RoutineRowModel {
	if subjects == nil {
		subjects = []string{}
	}
	return model.RoutineRowModel{RoutineRowTime: at, RoutineRowSubjects: pq.StringArray(subjects)}
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.RoutineRowModel{}).Count(&n).Error)
	return n
}

func TestReplace_RemovesPreviousRoutineAndRows(t *testing.T) {
	r, db := setup(t)
	ctx := context.Background()

	first := routine("7A", row("07:00", "Math", "Art"), row("08:00", "PE"))
	require.NoError(t, r.Replace(ctx, first))
	require.NoError(t, r.Replace(ctx, routine("7B", row("07:00", "Music"))))

	second := routine("7A", row(" 09:00 ", " Biology ", ""))
	require.NoError(t, r.Replace(ctx, second))

	got, err := r.FindByClass(ctx, "7A")
	require.NoError(t, err)
	assert.Equal(t, second.RoutineID, got.RoutineID)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, " 09:00 ", got.Rows[0].RoutineRowTime)
	assert.Equal(t, pq.StringArray{" Biology ", ""}, got.Rows[0].RoutineRowSubjects)

	var stale int64
	require.NoError(t, db.Model(&model.RoutineRowModel{}).Where("routine_row_routine_id = ?", first.RoutineID).Count(&stale).Error)
	assert.Zero(t, stale)
	assert.EqualValues(t, 2, countRows(t, db))

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestReplace_KeepsRowOrder(t *testing.T) {
	r, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, r.Replace(ctx, routine("8C", row("c"), row("a"), row("b"))))

	got, err := r.FindByClass(ctx, "8C")
	require.NoError(t, err)
	var times []string
	for _, rw := range got.Rows {
		times = append(times, rw.RoutineRowTime)
	}
	assert.Equal(t, []string{"c", "a", "b"}, times)
}

func TestReplace_ConflictingInsertIsUniqueViolation(t *testing.T) {
	r, db := setup(t)
	ctx := context.Background()

	// transaksi lain sudah insert kelas yang sama tapi belum commit
	tx := db.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, tx.Create(routine("9D", row("07:00", "Math"))).Error)

	done := make(chan error, 1)
	go func() { done <- r.Replace(ctx, routine("9D", row("08:00", "Art"))) }()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, tx.Commit().Error)

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, apperror.IsUniqueViolation(err))
	case <-time.After(10 * time.Second):
		t.Fatal("replace did not finish")
	}

	got, err := r.FindByClass(ctx, "9D")
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "07:00", got.Rows[0].RoutineRowTime)
}

func TestDeleteByClass(t *testing.T) {
	r, db := setup(t)
	ctx := context.Background()
	require.NoError(t, r.Replace(ctx, routine("10E", row("07:00", "Math"), row("08:00"))))

	n, err := r.DeleteByClass(ctx, "10E")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Zero(t, countRows(t, db))

	_, err = r.FindByClass(ctx, "10E")
	assert.True(t, errors.Is(err, helperRepo.ErrRecordNotFound))

	n, err = r.DeleteByClass(ctx, "10E")
	require.NoError(t, err)
	assert.Zero(t, n)
}
