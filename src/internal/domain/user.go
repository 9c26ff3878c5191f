package domain

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Status       UserStatus
}

func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

func (u User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}
