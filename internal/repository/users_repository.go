package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
)

const userColumns = `id, email, password_hash, provider, plan_tier, theme, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	var tier string
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Provider, &tier, &user.Theme, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.PlanTier = entity.PlanTier(tier)
	return &user, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (email, password_hash, provider) VALUES ($1, $2, $3) RETURNING `+userColumns+`;`,
		user.Email, user.PasswordHash, user.Provider,
	)
	created, err := scanUser(row)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("creating user db error: " + err.Error())
	}
	return created, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpsertOAuth(ctx context.Context, email, provider string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (email, provider) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email RETURNING `+userColumns+`;`,
		email, provider,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, errors.New("upserting oauth user error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdatePlan(ctx context.Context, uid uuid.UUID, tier entity.PlanTier) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET plan_tier = $1 WHERE id = $2;`, string(tier), uid)
	if err != nil {
		return errors.New("updating plan error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateTheme(ctx context.Context, uid uuid.UUID, theme string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET theme = $1 WHERE id = $2;`, theme, uid)
	if err != nil {
		return errors.New("updating theme error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
