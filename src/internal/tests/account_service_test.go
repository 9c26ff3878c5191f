package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
	"github.com/junhyeong9812/simple-bank-back/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestAccountServiceGetAccountsProjectsAllFields(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, UserID: 1, AccountNumber: "1000000001", Balance: decimal.RequireFromString("10000.00"), Status: domain.AccountStatusActive},
		{ID: 2, UserID: 1, AccountNumber: "1000000002", Balance: decimal.RequireFromString("50000.00"), Status: domain.AccountStatusActive},
	}
	svc := services.NewAccountService(accountRepoStub{
		getByUserIDFn: func(_ context.Context, userID int64) ([]domain.Account, error) {
			if userID != 1 {
				return []domain.Account{}, nil
			}
			return accounts, nil
		},
	})

	resp, err := svc.GetAccounts(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data == nil {
		t.Fatal("expected response data")
	}
	views := resp.Data.Accounts
	if len(views) != len(accounts) {
		t.Fatalf("expected %d views, got %d", len(accounts), len(views))
	}
	for i, account := range accounts {
		view := views[i]
		if view.AccountID != account.ID {
			t.Fatalf("view %d: expected id %d, got %d", i, account.ID, view.AccountID)
		}
		if view.AccountNumber != account.AccountNumber {
			t.Fatalf("view %d: expected account number %s, got %s", i, account.AccountNumber, view.AccountNumber)
		}
		if !view.Balance.Equal(account.Balance) {
			t.Fatalf("view %d: expected balance %s, got %s", i, account.Balance, view.Balance)
		}
		if view.Balance.String() != account.Balance.String() {
			t.Fatalf("view %d: expected balance scale preserved, %s vs %s", i, account.Balance, view.Balance)
		}
		if view.Status != string(account.Status) {
			t.Fatalf("view %d: expected status %s, got %s", i, account.Status, view.Status)
		}
	}
}

func TestAccountServiceGetAccountsEmptyForUserWithoutAccounts(t *testing.T) {
	svc := services.NewAccountService(accountRepoStub{
		getByUserIDFn: func(context.Context, int64) ([]domain.Account, error) {
			return []domain.Account{}, nil
		},
	})

	resp, err := svc.GetAccounts(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected nil error for user without accounts, got %v", err)
	}
	if resp.Data == nil {
		t.Fatal("expected response data")
	}
	if resp.Data.Accounts == nil || len(resp.Data.Accounts) != 0 {
		t.Fatalf("expected empty non-nil account list, got %v", resp.Data.Accounts)
	}
}

func TestAccountServiceGetAccountsNonPositiveUserIDIsNotAnError(t *testing.T) {
	queried := make([]int64, 0)
	svc := services.NewAccountService(accountRepoStub{
		getByUserIDFn: func(_ context.Context, userID int64) ([]domain.Account, error) {
			queried = append(queried, userID)
			return []domain.Account{}, nil
		},
	})

	for _, userID := range []int64{0, -1} {
		resp, err := svc.GetAccounts(context.Background(), userID)
		if err != nil {
			t.Fatalf("userID %d: expected nil error, got %v", userID, err)
		}
		if resp.Data == nil || len(resp.Data.Accounts) != 0 {
			t.Fatalf("userID %d: expected empty account list", userID)
		}
	}
	if len(queried) != 2 {
		t.Fatalf("expected repository queried for every id, got %v", queried)
	}
}

func TestAccountServiceGetAccountsRepositoryFailurePropagates(t *testing.T) {
	repoErr := errors.New("storage unavailable")
	svc := services.NewAccountService(accountRepoStub{
		getByUserIDFn: func(context.Context, int64) ([]domain.Account, error) {
			return nil, repoErr
		},
	})

	_, err := svc.GetAccounts(context.Background(), 1)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate unchanged, got %v", err)
	}
}
