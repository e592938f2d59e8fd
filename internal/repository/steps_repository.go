package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
)

const stepColumns = `id, mountain_id, title, description, expected_outcome, status, order_index`

type StepsRepository struct {
	conn PgConnection
}

func NewStepsRepo(conn PgConnection) *StepsRepository {
	return &StepsRepository{
		conn: conn,
	}
}

func scanStep(row pgx.Row) (*entity.Step, error) {
	var s entity.Step
	var status string
	err := row.Scan(&s.ID, &s.MountainID, &s.Title, &s.Description, &s.ExpectedOutcome, &status, &s.OrderIndex)
	if err != nil {
		return nil, err
	}
	s.Status = entity.StepStatus(status)
	return &s, nil
}

func (sr *StepsRepository) FetchForMountain(ctx context.Context, mountainID uuid.UUID) ([]entity.Step, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+stepColumns+` FROM steps WHERE mountain_id = $1 ORDER BY order_index ASC, id ASC;`, mountainID)
	if err != nil {
		return nil, errors.New("fetching steps error: " + err.Error())
	}
	defer rows.Close()
	steps := make([]entity.Step, 0)
	for rows.Next() {
		s, err := scanStep(rows)
		if err != nil {
			return nil, errors.New("scanning step error: " + err.Error())
		}
		steps = append(steps, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating steps error: " + err.Error())
	}
	return steps, nil
}

func (sr *StepsRepository) Add(ctx context.Context, step *entity.Step) (*entity.Step, error) {
	if step == nil {
		return nil, errors.New("step is nil")
	}
	status := step.Status
	if status == "" {
		status = entity.StepPending
	}
	if !status.Valid() {
		return nil, errorvalues.ErrInvalidStatus
	}
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx)

	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM mountains WHERE id = $1 FOR UPDATE;`, step.MountainID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMountainNotFound
		}
		return nil, errors.New("locking mountain error: " + err.Error())
	}

	var lastStatus string
	var lastHasNote bool
	err = tx.QueryRow(ctx, `SELECT s.status, EXISTS(SELECT 1 FROM journey_notes n WHERE n.step_id = s.id) FROM steps s
		WHERE s.mountain_id = $1 ORDER BY s.order_index DESC, s.id DESC LIMIT 1;`, step.MountainID).Scan(&lastStatus, &lastHasNote)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// first step of the mountain
	case err != nil:
		return nil, errors.New("checking previous step error: " + err.Error())
	case !entity.StepStatus(lastStatus).Resolved():
		return nil, errorvalues.ErrPreviousStepUnresolved
	case !lastHasNote:
		return nil, errorvalues.ErrPreviousStepNeedsNote
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM steps WHERE mountain_id = $1;`, step.MountainID).Scan(&count)
	if err != nil {
		return nil, errors.New("counting steps error: " + err.Error())
	}
	created, err := scanStep(tx.QueryRow(ctx, `INSERT INTO steps (mountain_id, title, description, expected_outcome, status, order_index)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+stepColumns+`;`,
		step.MountainID, step.Title, step.Description, step.ExpectedOutcome, string(status), count,
	))
	if err != nil {
		return nil, errors.New("inserting step error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing step error: " + err.Error())
	}
	return created, nil
}

func (sr *StepsRepository) UpdateStatus(ctx context.Context, id int64, status entity.StepStatus) error {
	if !status.Valid() {
		return errorvalues.ErrInvalidStatus
	}
	ct, err := sr.conn.Exec(ctx, `UPDATE steps SET status = $1 WHERE id = $2;`, string(status), id)
	if err != nil {
		return errors.New("updating step status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStepNotFound
	}
	return nil
}

func (sr *StepsRepository) Update(ctx context.Context, step *entity.Step) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE steps SET title = $1, description = $2, expected_outcome = $3 WHERE id = $4;`,
		step.Title, step.Description, step.ExpectedOutcome, step.ID,
	)
	if err != nil {
		return errors.New("updating step error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStepNotFound
	}
	return nil
}

func (sr *StepsRepository) Delete(ctx context.Context, id int64) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx)
	if _, err = tx.Exec(ctx, `DELETE FROM journey_notes WHERE step_id = $1;`, id); err != nil {
		return errors.New("deleting step notes error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM steps WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting step error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStepNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing step delete error: " + err.Error())
	}
	return nil
}

func (sr *StepsRepository) CountForMountain(ctx context.Context, mountainID uuid.UUID) (int, error) {
	var count int
	err := sr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM steps WHERE mountain_id = $1;`, mountainID).Scan(&count)
	if err != nil {
		return 0, errors.New("counting steps error: " + err.Error())
	}
	return count, nil
}
