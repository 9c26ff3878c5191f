package memory

import (
	"context"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

// UserRepository is a fixture-backed adapter satisfying the same contract as
// the postgres implementation. It is read-only, matching the service's scope.
type UserRepository struct {
	users []domain.User
}

func NewUserRepository(users ...domain.User) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (domain.User, bool, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, true, nil
		}
	}

	return domain.User{}, false, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (domain.User, bool, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, true, nil
		}
	}

	return domain.User{}, false, nil
}
