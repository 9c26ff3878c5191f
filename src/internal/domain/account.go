package domain

import "github.com/shopspring/decimal"

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

type Account struct {
	ID            int64
	UserID        int64
	AccountNumber string
	Balance       decimal.Decimal
	Status        AccountStatus
}

func (a Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

func (a Account) IsClosed() bool {
	return a.Status == AccountStatusClosed
}
