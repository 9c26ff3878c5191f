package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidPassword = errors.New("invalid password")

// UserNotFoundError carries the lookup key that missed: the username on the
// login path, the numeric id on the profile path.
type UserNotFoundError struct {
	Username string
	UserID   int64
}

func (e *UserNotFoundError) Error() string {
	if e.Username != "" {
		return fmt.Sprintf("user not found: %s", e.Username)
	}
	return fmt.Sprintf("user not found with id: %d", e.UserID)
}

type BlockedUserError struct {
	Username string
}

func (e *BlockedUserError) Error() string {
	return fmt.Sprintf("user is blocked: %s", e.Username)
}
