package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/routines/model"
	"schoolsite_backend/internals/features/school/routines/service"
	"schoolsite_backend/internals/helpers/apperror"
	"schoolsite_backend/internals/helpers/repository"
)

type memRoutines struct {
	mu    sync.Mutex
	items []model.RoutineModel
	clock time.Time
	err   error
}

func (r *memRoutines) Replace(_ context.Context, m *model.RoutineModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	kept := r.items[:0]
	for _, it := range r.items {
		if it.RoutineClassName != m.RoutineClassName {
			kept = append(kept, it)
		}
	}
	r.items = kept
	m.RoutineID = uuid.New()
	r.clock = r.clock.Add(time.Second)
	m.RoutineCreatedAt = r.clock
	r.items = append(r.items, *m)
	return nil
}

func (r *memRoutines) List(_ context.Context) ([]model.RoutineModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]model.RoutineModel(nil), r.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].RoutineCreatedAt.After(out[j].RoutineCreatedAt) })
	return out, nil
}

func (r *memRoutines) FindByClass(_ context.Context, className string) (*model.RoutineModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.RoutineClassName == className {
			cp := it
			return &cp, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *memRoutines) DeleteByClass(_ context.Context, className string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	kept := r.items[:0]
	for _, it := range r.items {
		if it.RoutineClassName == className {
			n++
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	return n, nil
}

func rows(times ...string) []model.RoutineRowModel {
	out := make([]model.RoutineRowModel, 0, len(times))
	for _, t := range times {
		out = append(out, model.RoutineRowModel{RoutineRowTime: t, RoutineRowSubjects: pq.StringArray{"Math", "Bangla", "English"}})
	}
	return out
}

func newService() (*service.RoutineService, *memRoutines) {
	repo := &memRoutines{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return service.NewRoutineService(repo, zap.NewNop()), repo
}

func TestSave_ReplacesPreviousRoutineForClass(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "7", rows("08:00", "09:00"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, "8", rows("08:00"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, "7", rows("10:00"))
	require.NoError(t, err)

	assert.Len(t, repo.items, 2)
	got, err := svc.GetByClass(ctx, "7")
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "10:00", got.Rows[0].RoutineRowTime)
	assert.Equal(t, pq.StringArray{"Math", "Bangla", "English"}, got.Rows[0].RoutineRowSubjects)
}

func TestSave_PreservesRowOrder(t *testing.T) {
	svc, _ := newService()
	saved, err := svc.Save(context.Background(), "9", rows("10:00", "08:00", "09:00"))
	require.NoError(t, err)
	for i, r := range saved.Rows {
		assert.Equal(t, i, r.RoutineRowPosition)
	}
	assert.Equal(t, "10:00", saved.Rows[0].RoutineRowTime)
	assert.Equal(t, "09:00", saved.Rows[2].RoutineRowTime)
}

func TestSave_Validation(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	cases := map[string]struct {
		class string
		rows  []model.RoutineRowModel
	}{
		"no class":     {"", rows("08:00")},
		"no rows":      {"7", nil},
		"row w/o time": {"7", rows("08:00", " ")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Save(ctx, tc.class, tc.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
			assert.Equal(t, "Class and routine data are required", apperror.MessageOf(err))
		})
	}
	assert.Empty(t, repo.items)
}

func TestSave_PersistenceFailure(t *testing.T) {
	svc, repo := newService()
	repo.err = errors.New("tx aborted")
	_, err := svc.Save(context.Background(), "7", rows("08:00"))
	assert.True(t, errors.Is(err, apperror.ErrPersistence))
}

func TestGetByClass_NotFound(t *testing.T) {
	svc, _ := newService()
	_, err := svc.GetByClass(context.Background(), "12")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "No routine found for this class", apperror.MessageOf(err))
}

func TestListAndDelete(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, _ = svc.Save(ctx, "6", rows("08:00"))
	_, _ = svc.Save(ctx, "7", rows("08:00"))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "7", items[0].RoutineClassName)

	n, err := svc.DeleteByClass(ctx, "7")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, "1 routine(s) deleted for class 7", service.DeletedMessage(n, "7"))

	n, err = svc.DeleteByClass(ctx, "7")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSave_PaddedCellsRoundTripExactly(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	in := []model.RoutineRowModel{
		{RoutineRowTime: " 08:00 ", RoutineRowSubjects: pq.StringArray{" Math ", "  ", "English"}},
		{RoutineRowTime: "09:00\t", RoutineRowSubjects: pq.StringArray{"Bangla "}},
	}

	_, err := svc.Save(ctx, "7", in)
	require.NoError(t, err)

	got, err := svc.GetByClass(ctx, "7")
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, " 08:00 ", got.Rows[0].RoutineRowTime)
	assert.Equal(t, pq.StringArray{" Math ", "  ", "English"}, got.Rows[0].RoutineRowSubjects)
	assert.Equal(t, "09:00\t", got.Rows[1].RoutineRowTime)
	assert.Equal(t, pq.StringArray{"Bangla "}, got.Rows[1].RoutineRowSubjects)
}
