package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/ascent/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns it with generated fields
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// Looks up user by email. Used for sign in
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Creates OAuth user or returns the existing one with the same email
	UpsertOAuth(ctx context.Context, email, provider string) (*entity.User, error)
	UpdatePlan(ctx context.Context, uid uuid.UUID, tier entity.PlanTier) error
	UpdateTheme(ctx context.Context, uid uuid.UUID, theme string) error
	Delete(ctx context.Context, uid uuid.UUID) error
}

type MountainsRepositoryI interface {
	// Most recent mountain of the user
	FetchForUser(ctx context.Context, uid uuid.UUID) (*entity.Mountain, error)
	// Inserts mountain unless the user already has one, in which case the existing one is returned
	Create(ctx context.Context, m *entity.Mountain) (*entity.Mountain, error)
	Update(ctx context.Context, m *entity.Mountain) error
	UpdateProgress(ctx context.Context, id uuid.UUID, currentValue float64) error
	// Atomically adds one share. Negative limit means unlimited. Returns new count
	IncrementShareCount(ctx context.Context, id uuid.UUID, limit int) (int, error)
	ClaimProfile(ctx context.Context, id uuid.UUID, username string, isPublic bool, bio string) error
	FetchPublic(ctx context.Context, username string) (*entity.Mountain, error)
}

type StepsRepositoryI interface {
	// Steps of a mountain ordered by order index
	FetchForMountain(ctx context.Context, mountainID uuid.UUID) ([]entity.Step, error)
	// Appends step after checking that the last step is resolved and has a note
	Add(ctx context.Context, step *entity.Step) (*entity.Step, error)
	UpdateStatus(ctx context.Context, id int64, status entity.StepStatus) error
	// Updates title, description and expected outcome
	Update(ctx context.Context, step *entity.Step) error
	// Deletes step together with its notes
	Delete(ctx context.Context, id int64) error
	CountForMountain(ctx context.Context, mountainID uuid.UUID) (int, error)
}

type NotesRepositoryI interface {
	FetchForSteps(ctx context.Context, stepIDs []int64) ([]entity.JourneyNote, error)
	// Latest note of the step
	FetchForStep(ctx context.Context, stepID int64) (*entity.JourneyNote, error)
	// Updates the latest note of the step or inserts one, and syncs step status
	Save(ctx context.Context, note *entity.JourneyNote) (*entity.JourneyNote, error)
	// Inserts one more note for the step and syncs step status
	Append(ctx context.Context, note *entity.JourneyNote) (*entity.JourneyNote, error)
	Delete(ctx context.Context, id int64) error
	// Deletes note and resets the step status to pending
	DeleteAndResetStep(ctx context.Context, stepID, noteID int64) error
}

type MilestonesRepositoryI interface {
	// Milestones ordered by target value
	ListForMountain(ctx context.Context, mountainID uuid.UUID) ([]entity.Milestone, error)
	Create(ctx context.Context, m *entity.Milestone) (*entity.Milestone, error)
	Delete(ctx context.Context, mountainID, id uuid.UUID) error
	// Unlocks every locked milestone with target value <= value, returns unlocked ones
	UnlockReached(ctx context.Context, mountainID uuid.UUID, value float64) ([]entity.Milestone, error)
}

const MaxImagesPerMountain = 3

type ImagesRepositoryI interface {
	ListForMountain(ctx context.Context, mountainID uuid.UUID) ([]entity.ProductImage, error)
	// Refuses to store more than MaxImagesPerMountain images
	Add(ctx context.Context, img *entity.ProductImage) (*entity.ProductImage, error)
	Delete(ctx context.Context, mountainID, id uuid.UUID) error
}

type WaitlistRepositoryI interface {
	// Inserts entry, an existing email gets its feedback updated
	Insert(ctx context.Context, email, feedback string) error
	List(ctx context.Context) ([]entity.WaitlistEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
