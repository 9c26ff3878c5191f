package services_test

import (
	"context"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

type userRepoStub struct {
	getByUsernameFn func(ctx context.Context, username string) (domain.User, bool, error)
	getByIDFn       func(ctx context.Context, id int64) (domain.User, bool, error)
}

func (s userRepoStub) GetByUsername(ctx context.Context, username string) (domain.User, bool, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return domain.User{}, false, nil
}

func (s userRepoStub) GetByID(ctx context.Context, id int64) (domain.User, bool, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.User{}, false, nil
}

type accountRepoStub struct {
	getByIDFn     func(ctx context.Context, id int64) (domain.Account, bool, error)
	getByUserIDFn func(ctx context.Context, userID int64) ([]domain.Account, error)
}

func (s accountRepoStub) GetByID(ctx context.Context, id int64) (domain.Account, bool, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Account{}, false, nil
}

func (s accountRepoStub) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

type verifierStub struct {
	matchesFn func(password, passwordHash string) bool
	calls     *int
}

func (s verifierStub) Matches(password, passwordHash string) bool {
	if s.calls != nil {
		*s.calls++
	}
	if s.matchesFn != nil {
		return s.matchesFn(password, passwordHash)
	}
	return false
}
