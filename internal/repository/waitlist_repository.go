package repository

import (
	"context"
	"errors"

	"github.com/limbo/ascent/pkg/entity"
)

type WaitlistRepository struct {
	conn PgConnection
}

func NewWaitlistRepo(conn PgConnection) *WaitlistRepository {
	return &WaitlistRepository{
		conn: conn,
	}
}

func (wr *WaitlistRepository) Insert(ctx context.Context, email, feedback string) error {
	_, err := wr.conn.Exec(ctx, `INSERT INTO pro_waitlist (email, feedback) VALUES ($1, $2);`, email, feedback)
	if err == nil {
		return nil
	}
	if pgCode(err) != pgUniqueViolation {
		return errors.New("inserting waitlist entry error: " + err.Error())
	}
	_, err = wr.conn.Exec(ctx, `UPDATE pro_waitlist SET feedback = $1 WHERE email = $2;`, feedback, email)
	if err != nil {
		return errors.New("updating waitlist feedback error: " + err.Error())
	}
	return nil
}

func (wr *WaitlistRepository) List(ctx context.Context) ([]entity.WaitlistEntry, error) {
	rows, err := wr.conn.Query(ctx, `SELECT email, feedback, created_at FROM pro_waitlist ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("fetching waitlist error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.WaitlistEntry, 0)
	for rows.Next() {
		var e entity.WaitlistEntry
		if err = rows.Scan(&e.Email, &e.Feedback, &e.CreatedAt); err != nil {
			return nil, errors.New("scanning waitlist entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating waitlist error: " + err.Error())
	}
	return entries, nil
}
