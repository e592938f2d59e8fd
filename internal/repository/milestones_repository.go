package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
)

const milestoneColumns = `id, mountain_id, target_value, commitment, reward, unlocked, unlocked_at`

type MilestonesRepository struct {
	conn PgConnection
}

func NewMilestonesRepo(conn PgConnection) *MilestonesRepository {
	return &MilestonesRepository{
		conn: conn,
	}
}

func scanMilestone(row pgx.Row) (*entity.Milestone, error) {
	var m entity.Milestone
	err := row.Scan(&m.ID, &m.MountainID, &m.TargetValue, &m.Commitment, &m.Reward, &m.Unlocked, &m.UnlockedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMilestones(rows pgx.Rows) ([]entity.Milestone, error) {
	defer rows.Close()
	out := make([]entity.Milestone, 0)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (mr *MilestonesRepository) ListForMountain(ctx context.Context, mountainID uuid.UUID) ([]entity.Milestone, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE mountain_id = $1 ORDER BY target_value ASC;`, mountainID)
	if err != nil {
		return nil, errors.New("fetching milestones error: " + err.Error())
	}
	out, err := collectMilestones(rows)
	if err != nil {
		return nil, errors.New("reading milestones error: " + err.Error())
	}
	return out, nil
}

func (mr *MilestonesRepository) Create(ctx context.Context, m *entity.Milestone) (*entity.Milestone, error) {
	if m == nil {
		return nil, errors.New("milestone is nil")
	}
	created, err := scanMilestone(mr.conn.QueryRow(ctx, `INSERT INTO milestones (mountain_id, target_value, commitment, reward)
		VALUES ($1, $2, $3, $4) RETURNING `+milestoneColumns+`;`,
		m.MountainID, m.TargetValue, m.Commitment, m.Reward,
	))
	if err != nil {
		if pgCode(err) == pgFKViolation {
			return nil, errorvalues.ErrMountainNotFound
		}
		return nil, errors.New("creating milestone error: " + err.Error())
	}
	return created, nil
}

func (mr *MilestonesRepository) Delete(ctx context.Context, mountainID, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM milestones WHERE id = $1 AND mountain_id = $2;`, id, mountainID)
	if err != nil {
		return errors.New("deleting milestone error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMilestoneNotFound
	}
	return nil
}

func (mr *MilestonesRepository) UnlockReached(ctx context.Context, mountainID uuid.UUID, value float64) ([]entity.Milestone, error) {
	rows, err := mr.conn.Query(ctx, `UPDATE milestones SET unlocked = TRUE, unlocked_at = NOW()
		WHERE mountain_id = $1 AND NOT unlocked AND target_value <= $2 RETURNING `+milestoneColumns+`;`, mountainID, value)
	if err != nil {
		return nil, errors.New("unlocking milestones error: " + err.Error())
	}
	out, err := collectMilestones(rows)
	if err != nil {
		return nil, errors.New("reading unlocked milestones error: " + err.Error())
	}
	return out, nil
}
