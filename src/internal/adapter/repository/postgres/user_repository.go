package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, bool, error) {
	const query = `
SELECT id, username, password, status
FROM users
WHERE username = $1`

	var user domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, username), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("get user by username: %w", err)
	}

	return user, true, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, bool, error) {
	const query = `
SELECT id, username, password, status
FROM users
WHERE id = $1`

	var user domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, id), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return user, true, nil
}

func scanUser(row rowScanner, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Status,
	)
}
