package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (domain.Account, bool, error) {
	const query = `
SELECT id, user_id, account_number, balance, status
FROM accounts
WHERE id = $1`

	var account domain.Account
	if err := scanAccount(r.db.QueryRowContext(ctx, query, id), &account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, fmt.Errorf("get account by id: %w", err)
	}

	return account, true, nil
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	const query = `
SELECT id, user_id, account_number, balance, status
FROM accounts
WHERE user_id = $1
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get accounts by user id: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}

func scanAccount(row rowScanner, account *domain.Account) error {
	return row.Scan(
		&account.ID,
		&account.UserID,
		&account.AccountNumber,
		&account.Balance,
		&account.Status,
	)
}
