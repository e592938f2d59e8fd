package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stepCols = []string{"id", "mountain_id", "title", "description", "expected_outcome", "status", "order_index"}

func TestAddStep(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStepsRepo(mock)
	ctx := context.Background()
	mid := uuid.New()
	lock := regexp.QuoteMeta(`SELECT id FROM mountains WHERE id = $1 FOR UPDATE;`)
	last := `(?s)SELECT s\.status, EXISTS\(.*ORDER BY s\.order_index DESC, s\.id DESC LIMIT 1;`
	count := regexp.QuoteMeta(`SELECT COUNT(*) FROM steps WHERE mountain_id = $1;`)
	insert := regexp.QuoteMeta(`INSERT INTO steps`)
	step := &entity.Step{MountainID: mid, Title: "Launch landing page", ExpectedOutcome: "50 signups"}

	t.Run("first step", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(mid))
		mock.ExpectQuery(last).WithArgs(mid).WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(count).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(insert).
			WithArgs(mid, step.Title, "", step.ExpectedOutcome, "pending", 0).
			WillReturnRows(pgxmock.NewRows(stepCols).AddRow(int64(1), mid, step.Title, "", step.ExpectedOutcome, "pending", 0))
		mock.ExpectCommit()
		got, err := repo.Add(ctx, step)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, entity.StepPending, got.Status)
		assert.Equal(t, 0, got.OrderIndex)
	})
	t.Run("previous step has a note", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(mid))
		mock.ExpectQuery(last).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"status", "exists"}).AddRow("failed", true))
		mock.ExpectQuery(count).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(insert).
			WithArgs(mid, step.Title, "", step.ExpectedOutcome, "pending", 2).
			WillReturnRows(pgxmock.NewRows(stepCols).AddRow(int64(3), mid, step.Title, "", step.ExpectedOutcome, "pending", 2))
		mock.ExpectCommit()
		got, err := repo.Add(ctx, step)
		assert.NoError(t, err)
		assert.Equal(t, 2, got.OrderIndex)
	})
	t.Run("previous step unresolved", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(mid))
		mock.ExpectQuery(last).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"status", "exists"}).AddRow("in-progress", false))
		mock.ExpectRollback()
		_, err := repo.Add(ctx, step)
		assert.ErrorIs(t, err, errorvalues.ErrPreviousStepUnresolved)
	})
	t.Run("previous step reset to pending keeps its lessons", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(mid))
		mock.ExpectQuery(last).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"status", "exists"}).AddRow("pending", true))
		mock.ExpectRollback()
		_, err := repo.Add(ctx, step)
		assert.ErrorIs(t, err, errorvalues.ErrPreviousStepUnresolved)
	})
	t.Run("previous step resolved without note", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(mid))
		mock.ExpectQuery(last).WithArgs(mid).WillReturnRows(pgxmock.NewRows([]string{"status", "exists"}).AddRow("success", false))
		mock.ExpectRollback()
		_, err := repo.Add(ctx, step)
		assert.ErrorIs(t, err, errorvalues.ErrPreviousStepNeedsNote)
	})
	t.Run("no mountain", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(mid).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()
		_, err := repo.Add(ctx, step)
		assert.ErrorIs(t, err, errorvalues.ErrMountainNotFound)
	})
	t.Run("invalid status", func(t *testing.T) {
		_, err := repo.Add(ctx, &entity.Step{MountainID: mid, Title: "x", Status: "done"})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidStatus)
	})
}

func TestFetchStepsForMountain(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStepsRepo(mock)
	mid := uuid.New()
	query := regexp.QuoteMeta(`FROM steps WHERE mountain_id = $1 ORDER BY order_index ASC, id ASC;`)

	t.Run("ordered", func(t *testing.T) {
		rows := pgxmock.NewRows(stepCols).
			AddRow(int64(1), mid, "one", "", "", "success", 0).
			AddRow(int64(2), mid, "two", "", "", "in-progress", 1)
		mock.ExpectQuery(query).WithArgs(mid).WillReturnRows(rows)
		steps, err := repo.FetchForMountain(context.Background(), mid)
		assert.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, entity.StepSuccess, steps[0].Status)
		assert.Equal(t, entity.StepInProgress, steps[1].Status)
		assert.Equal(t, 1, steps[1].OrderIndex)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(mid).WillReturnError(errors.New("db error"))
		_, err := repo.FetchForMountain(context.Background(), mid)
		assert.Error(t, err)
	})
}

func TestDeleteStep(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStepsRepo(mock)
	notes := regexp.QuoteMeta(`DELETE FROM journey_notes WHERE step_id = $1;`)
	step := regexp.QuoteMeta(`DELETE FROM steps WHERE id = $1;`)

	t.Run("deletes notes with the step", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(notes).WithArgs(int64(7)).WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(step).WithArgs(int64(7)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()
		assert.NoError(t, repo.Delete(context.Background(), 7))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(notes).WithArgs(int64(8)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(step).WithArgs(int64(8)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()
		assert.ErrorIs(t, repo.Delete(context.Background(), 8), errorvalues.ErrStepNotFound)
	})
}

func TestUpdateStepStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStepsRepo(mock)
	query := regexp.QuoteMeta(`UPDATE steps SET status = $1 WHERE id = $2;`)

	mock.ExpectExec(query).WithArgs("in-progress", int64(3)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateStatus(context.Background(), 3, entity.StepInProgress))

	mock.ExpectExec(query).WithArgs("failed", int64(4)).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 4, entity.StepFailed), errorvalues.ErrStepNotFound)

	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 4, "archived"), errorvalues.ErrInvalidStatus)
}
