package domain

import "context"

// UserRepository is read-only in this service. Absence is reported through the
// found flag, never as an error; only the use-case layer decides whether a
// miss is a business failure.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
}
