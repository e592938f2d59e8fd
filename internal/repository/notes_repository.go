package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
)

const noteColumns = `id, step_id, result, reflection_text, lesson_learned, title, created_at, updated_at`

// A deleted note always sends its step back to pending, whatever lessons remain.
const resetStepStatus = `UPDATE steps SET status = 'pending' WHERE id = $1;`

type NotesRepository struct {
	conn PgConnection
}

func NewNotesRepo(conn PgConnection) *NotesRepository {
	return &NotesRepository{
		conn: conn,
	}
}

func scanNote(row pgx.Row) (*entity.JourneyNote, error) {
	var n entity.JourneyNote
	var result string
	err := row.Scan(&n.ID, &n.StepID, &result, &n.ReflectionText, &n.LessonLearned, &n.Title, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	n.Result = entity.NoteResult(result)
	return &n, nil
}

func (nr *NotesRepository) FetchForSteps(ctx context.Context, stepIDs []int64) ([]entity.JourneyNote, error) {
	notes := make([]entity.JourneyNote, 0)
	if len(stepIDs) == 0 {
		return notes, nil
	}
	rows, err := nr.conn.Query(ctx, `SELECT `+noteColumns+` FROM journey_notes WHERE step_id = ANY($1) ORDER BY created_at ASC, id ASC;`, stepIDs)
	if err != nil {
		return nil, errors.New("fetching notes error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, errors.New("scanning note error: " + err.Error())
		}
		notes = append(notes, *n)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating notes error: " + err.Error())
	}
	return notes, nil
}

func (nr *NotesRepository) FetchForStep(ctx context.Context, stepID int64) (*entity.JourneyNote, error) {
	n, err := scanNote(nr.conn.QueryRow(ctx, `SELECT `+noteColumns+` FROM journey_notes WHERE step_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1;`, stepID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoteNotFound
		}
		return nil, errors.New("fetching note error: " + err.Error())
	}
	return n, nil
}

func (nr *NotesRepository) Save(ctx context.Context, note *entity.JourneyNote) (*entity.JourneyNote, error) {
	return nr.write(ctx, note, true)
}

func (nr *NotesRepository) Append(ctx context.Context, note *entity.JourneyNote) (*entity.JourneyNote, error) {
	return nr.write(ctx, note, false)
}

// write stores the note and sets the step status from its result in one transaction.
// With upsert the latest note of the step is overwritten when present.
func (nr *NotesRepository) write(ctx context.Context, note *entity.JourneyNote, upsert bool) (*entity.JourneyNote, error) {
	if note == nil {
		return nil, errors.New("note is nil")
	}
	result, ok := entity.NormalizeResult(string(note.Result))
	if !ok {
		return nil, errorvalues.ErrInvalidResult
	}
	tx, err := nr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx)

	var saved *entity.JourneyNote
	if upsert {
		saved, err = scanNote(tx.QueryRow(ctx, `UPDATE journey_notes SET result = $1, reflection_text = $2, lesson_learned = $3, title = $4, updated_at = NOW()
			WHERE id = (SELECT id FROM journey_notes WHERE step_id = $5 ORDER BY created_at DESC, id DESC LIMIT 1) RETURNING `+noteColumns+`;`,
			string(result), note.ReflectionText, note.LessonLearned, note.Title, note.StepID,
		))
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("updating note error: " + err.Error())
		}
	}
	if saved == nil {
		saved, err = scanNote(tx.QueryRow(ctx, `INSERT INTO journey_notes (step_id, result, reflection_text, lesson_learned, title)
			VALUES ($1, $2, $3, $4, $5) RETURNING `+noteColumns+`;`,
			note.StepID, string(result), note.ReflectionText, note.LessonLearned, note.Title,
		))
		if err != nil {
			if pgCode(err) == pgFKViolation {
				return nil, errorvalues.ErrStepNotFound
			}
			return nil, errors.New("inserting note error: " + err.Error())
		}
	}
	ct, err := tx.Exec(ctx, `UPDATE steps SET status = $1 WHERE id = $2;`, string(result.StepStatus()), note.StepID)
	if err != nil {
		return nil, errors.New("syncing step status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return nil, errorvalues.ErrStepNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing note error: " + err.Error())
	}
	return saved, nil
}

func (nr *NotesRepository) Delete(ctx context.Context, id int64) error {
	tx, err := nr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx)
	var stepID int64
	err = tx.QueryRow(ctx, `DELETE FROM journey_notes WHERE id = $1 RETURNING step_id;`, id).Scan(&stepID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrNoteNotFound
		}
		return errors.New("deleting note error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, resetStepStatus, stepID); err != nil {
		return errors.New("resetting step status error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing note delete error: " + err.Error())
	}
	return nil
}

func (nr *NotesRepository) DeleteAndResetStep(ctx context.Context, stepID, noteID int64) error {
	tx, err := nr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx)
	ct, err := tx.Exec(ctx, `DELETE FROM journey_notes WHERE id = $1 AND step_id = $2;`, noteID, stepID)
	if err != nil {
		return errors.New("deleting note error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	ct, err = tx.Exec(ctx, resetStepStatus, stepID)
	if err != nil {
		return errors.New("resetting step status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStepNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing note delete error: " + err.Error())
	}
	return nil
}
