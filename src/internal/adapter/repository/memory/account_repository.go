package memory

import (
	"context"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

type AccountRepository struct {
	accounts []domain.Account
}

func NewAccountRepository(accounts ...domain.Account) *AccountRepository {
	return &AccountRepository{accounts: accounts}
}

func (r *AccountRepository) GetByID(_ context.Context, id int64) (domain.Account, bool, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, true, nil
		}
	}

	return domain.Account{}, false, nil
}

// GetByUserID preserves fixture insertion order.
func (r *AccountRepository) GetByUserID(_ context.Context, userID int64) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}
