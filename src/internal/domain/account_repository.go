package domain

import "context"

type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (Account, bool, error)
	// GetByUserID returns the user's accounts in stable order. An unknown
	// user id yields an empty slice, not an error.
	GetByUserID(ctx context.Context, userID int64) ([]Account, error)
}
