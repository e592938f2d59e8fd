package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/db"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (c *testPGConfig) ConnString() string {
	return c.connStr
}

// Runs against a throwaway postgres container. Needs docker, so it is opt-in.
func TestJourneyAgainstPostgres(t *testing.T) {
	if os.Getenv("ASCENT_INTEGRATION") == "" {
		t.Skip("set ASCENT_INTEGRATION=1 to run against a postgres container")
	}
	ctx := context.Background()
	pool, err := repository.Connect(ctx, setupTestDB(t), 0)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepo(pool)
	mountains := repository.NewMountainsRepo(pool)
	steps := repository.NewStepsRepo(pool)
	notes := repository.NewNotesRepo(pool)
	images := repository.NewImagesRepo(pool)

	user, err := users.Create(ctx, &entity.User{Email: "climber@example.com", PasswordHash: "x", Provider: "email"})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanFree, user.PlanTier)

	m, err := mountains.Create(ctx, &entity.Mountain{UserID: user.ID, Title: "First mountain"})
	require.NoError(t, err)
	again, err := mountains.Create(ctx, &entity.Mountain{UserID: user.ID, Title: "Second mountain"})
	require.NoError(t, err)
	assert.Equal(t, m.ID, again.ID, "a user holds a single mountain")
	assert.Equal(t, entity.DefaultTotalStepsPlanned, again.TotalStepsPlanned)

	t.Run("sequential steps", func(t *testing.T) {
		first, err := steps.Add(ctx, &entity.Step{MountainID: m.ID, Title: "Interview users"})
		require.NoError(t, err)
		assert.Equal(t, 0, first.OrderIndex)

		_, err = steps.Add(ctx, &entity.Step{MountainID: m.ID, Title: "Build MVP"})
		assert.ErrorIs(t, err, errorvalues.ErrPreviousStepUnresolved)

		require.NoError(t, steps.UpdateStatus(ctx, first.ID, entity.StepSuccess))
		_, err = steps.Add(ctx, &entity.Step{MountainID: m.ID, Title: "Build MVP"})
		assert.ErrorIs(t, err, errorvalues.ErrPreviousStepNeedsNote)

		note, err := notes.Save(ctx, &entity.JourneyNote{StepID: first.ID, Result: "failed", LessonLearned: "ask better questions"})
		require.NoError(t, err)
		assert.Equal(t, entity.ResultFailure, note.Result)

		second, err := steps.Add(ctx, &entity.Step{MountainID: m.ID, Title: "Build MVP"})
		require.NoError(t, err)
		assert.Equal(t, 1, second.OrderIndex)

		fetched, err := steps.FetchForMountain(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, fetched, 2)
		assert.Equal(t, entity.StepFailed, fetched[0].Status, "status follows the saved note")

		require.NoError(t, notes.DeleteAndResetStep(ctx, first.ID, note.ID))
		fetched, err = steps.FetchForMountain(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StepPending, fetched[0].Status)
	})

	t.Run("share limit", func(t *testing.T) {
		for i := 1; i <= 2; i++ {
			count, err := mountains.IncrementShareCount(ctx, m.ID, 2)
			require.NoError(t, err)
			assert.Equal(t, i, count)
		}
		_, err := mountains.IncrementShareCount(ctx, m.ID, 2)
		assert.ErrorIs(t, err, errorvalues.ErrShareLimitReached)
	})

	t.Run("image limit", func(t *testing.T) {
		for i := 0; i < repository.MaxImagesPerMountain; i++ {
			_, err := images.Add(ctx, &entity.ProductImage{MountainID: m.ID, ContentType: "image/png", Data: "AA=="})
			require.NoError(t, err)
		}
		_, err := images.Add(ctx, &entity.ProductImage{MountainID: m.ID, ContentType: "image/png", Data: "AA=="})
		assert.ErrorIs(t, err, errorvalues.ErrImageLimitReached)
	})

	t.Run("unknown mountain", func(t *testing.T) {
		_, err := steps.Add(ctx, &entity.Step{MountainID: uuid.New(), Title: "orphan"})
		assert.ErrorIs(t, err, errorvalues.ErrMountainNotFound)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("ascent"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := db.Open(connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = db.RunMigrations(context.Background(), conn); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
