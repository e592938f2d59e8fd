package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
)

const mountainColumns = `id, user_id, title, target, target_value, current_value, metric_prefix, metric_suffix, total_steps_planned, share_count, username, is_public, public_bio, created_at`

type MountainsRepository struct {
	conn PgConnection
}

func NewMountainsRepo(conn PgConnection) *MountainsRepository {
	return &MountainsRepository{
		conn: conn,
	}
}

func scanMountain(row pgx.Row) (*entity.Mountain, error) {
	var m entity.Mountain
	err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Target, &m.TargetValue, &m.CurrentValue,
		&m.MetricPrefix, &m.MetricSuffix, &m.TotalStepsPlanned, &m.ShareCount,
		&m.Username, &m.IsPublic, &m.PublicBio, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (mr *MountainsRepository) FetchForUser(ctx context.Context, uid uuid.UUID) (*entity.Mountain, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+mountainColumns+` FROM mountains WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1;`, uid)
	m, err := scanMountain(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMountainNotFound
		}
		return nil, errors.New("fetching mountain error: " + err.Error())
	}
	return m, nil
}

func (mr *MountainsRepository) Create(ctx context.Context, m *entity.Mountain) (*entity.Mountain, error) {
	if m == nil {
		return nil, errors.New("mountain is nil")
	}
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx)
	// Serializes concurrent creations of the same user.
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0));`, m.UserID)
	if err != nil {
		return nil, errors.New("locking user mountains error: " + err.Error())
	}
	existing, err := scanMountain(tx.QueryRow(ctx,
		`SELECT `+mountainColumns+` FROM mountains WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1;`, m.UserID))
	if err == nil {
		return existing, tx.Commit(ctx)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("fetching existing mountain error: " + err.Error())
	}
	planned := m.TotalStepsPlanned
	if planned <= 0 {
		planned = entity.DefaultTotalStepsPlanned
	}
	created, err := scanMountain(tx.QueryRow(ctx, `INSERT INTO mountains
		(user_id, title, target, target_value, current_value, metric_prefix, metric_suffix, total_steps_planned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+mountainColumns+`;`,
		m.UserID, m.Title, m.Target, m.TargetValue, m.CurrentValue, m.MetricPrefix, m.MetricSuffix, planned,
	))
	if err != nil {
		if pgCode(err) == pgFKViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating mountain error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing mountain error: " + err.Error())
	}
	return created, nil
}

func (mr *MountainsRepository) Update(ctx context.Context, m *entity.Mountain) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE mountains SET title = $1, target = $2, target_value = $3, current_value = $4,
		metric_prefix = $5, metric_suffix = $6, total_steps_planned = $7 WHERE id = $8;`,
		m.Title, m.Target, m.TargetValue, m.CurrentValue, m.MetricPrefix, m.MetricSuffix, m.TotalStepsPlanned, m.ID,
	)
	if err != nil {
		return errors.New("updating mountain error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMountainNotFound
	}
	return nil
}

func (mr *MountainsRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentValue float64) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE mountains SET current_value = $1 WHERE id = $2;`, currentValue, id)
	if err != nil {
		return errors.New("updating mountain progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMountainNotFound
	}
	return nil
}

func (mr *MountainsRepository) IncrementShareCount(ctx context.Context, id uuid.UUID, limit int) (int, error) {
	var count int
	err := mr.conn.QueryRow(ctx, `UPDATE mountains SET share_count = share_count + 1
		WHERE id = $1 AND ($2 < 0 OR share_count < $2) RETURNING share_count;`, id, limit).Scan(&count)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, errors.New("incrementing share count error: " + err.Error())
	}
	// Nothing updated: either the limit is hit or the mountain is gone.
	var exists bool
	err = mr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM mountains WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return 0, errors.New("inspecting mountain error: " + err.Error())
	}
	if !exists {
		return 0, errorvalues.ErrMountainNotFound
	}
	return 0, errorvalues.ErrShareLimitReached
}

func (mr *MountainsRepository) ClaimProfile(ctx context.Context, id uuid.UUID, username string, isPublic bool, bio string) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE mountains SET username = $1, is_public = $2, public_bio = $3 WHERE id = $4;`,
		username, isPublic, bio, id,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return errorvalues.ErrUsernameTaken
		}
		return errors.New("claiming profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMountainNotFound
	}
	return nil
}

func (mr *MountainsRepository) FetchPublic(ctx context.Context, username string) (*entity.Mountain, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+mountainColumns+` FROM mountains WHERE username = $1 AND is_public;`, username)
	m, err := scanMountain(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMountainNotFound
		}
		return nil, errors.New("fetching public mountain error: " + err.Error())
	}
	return m, nil
}
