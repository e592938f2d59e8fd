package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var milestoneCols = []string{"id", "mountain_id", "target_value", "commitment", "reward", "unlocked", "unlocked_at"}

func TestUnlockReachedMilestones(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMilestonesRepo(mock)
	mid := uuid.New()
	query := regexp.QuoteMeta(`UPDATE milestones SET unlocked = TRUE`)

	first := uuid.New()
	mock.ExpectQuery(query).WithArgs(mid, 1500.0).
		WillReturnRows(pgxmock.NewRows(milestoneCols).AddRow(first, mid, 1000.0, "no netflix", "new laptop", true, nil))
	unlocked, err := repo.UnlockReached(context.Background(), mid, 1500)
	assert.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, first, unlocked[0].ID)
	assert.True(t, unlocked[0].Unlocked)

	mock.ExpectQuery(query).WithArgs(mid, 10.0).WillReturnRows(pgxmock.NewRows(milestoneCols))
	unlocked, err = repo.UnlockReached(context.Background(), mid, 10)
	assert.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestCreateMilestone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMilestonesRepo(mock)
	mid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO milestones`)
	ms := &entity.Milestone{MountainID: mid, TargetValue: 5000, Commitment: "no coffee", Reward: "espresso machine"}

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).WithArgs(mid, 5000.0, "no coffee", "espresso machine").
			WillReturnRows(pgxmock.NewRows(milestoneCols).AddRow(id, mid, 5000.0, "no coffee", "espresso machine", false, nil))
		got, err := repo.Create(context.Background(), ms)
		assert.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.False(t, got.Unlocked)
		assert.Nil(t, got.UnlockedAt)
	})
	t.Run("unknown mountain", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(context.Background(), ms)
		assert.ErrorIs(t, err, errorvalues.ErrMountainNotFound)
	})
}

func TestAddImage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewImagesRepo(mock)
	mid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO product_images (mountain_id, content_type, data)`)
	img := &entity.ProductImage{MountainID: mid, ContentType: "image/png", Data: "iVBORw0KGgo="}

	t.Run("stored", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).WithArgs(mid, "image/png", img.Data, repository.MaxImagesPerMountain).
			WillReturnRows(pgxmock.NewRows([]string{"id", "mountain_id", "content_type", "data", "created_at"}).
				AddRow(id, mid, "image/png", img.Data, time.Now()))
		got, err := repo.Add(context.Background(), img)
		assert.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})
	t.Run("fourth image refused", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(mid, "image/png", img.Data, repository.MaxImagesPerMountain).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Add(context.Background(), img)
		assert.ErrorIs(t, err, errorvalues.ErrImageLimitReached)
	})
}

func TestDeleteImage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewImagesRepo(mock)
	mid, id := uuid.New(), uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM product_images WHERE id = $1 AND mountain_id = $2;`)

	mock.ExpectExec(query).WithArgs(id, mid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), mid, id))

	mock.ExpectExec(query).WithArgs(id, mid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), mid, id), errorvalues.ErrImageNotFound)
}

func TestWaitlistInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWaitlistRepo(mock)
	insert := regexp.QuoteMeta(`INSERT INTO pro_waitlist (email, feedback) VALUES ($1, $2);`)
	update := regexp.QuoteMeta(`UPDATE pro_waitlist SET feedback = $1 WHERE email = $2;`)

	t.Run("new entry", func(t *testing.T) {
		mock.ExpectExec(insert).WithArgs("a@b.co", "more themes").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Insert(context.Background(), "a@b.co", "more themes"))
	})
	t.Run("existing email updates feedback", func(t *testing.T) {
		mock.ExpectExec(insert).WithArgs("a@b.co", "csv export").WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectExec(update).WithArgs("csv export", "a@b.co").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Insert(context.Background(), "a@b.co", "csv export"))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(insert).WithArgs("a@b.co", "x").WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Insert(context.Background(), "a@b.co", "x"))
	})
}

func TestWaitlistList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWaitlistRepo(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM pro_waitlist ORDER BY created_at DESC;`)).
		WillReturnRows(pgxmock.NewRows([]string{"email", "feedback", "created_at"}).
			AddRow("b@b.co", "", now).
			AddRow("a@b.co", "dark mode", now.Add(-time.Hour)))
	entries, err := repo.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "dark mode", entries[1].Feedback)
}
