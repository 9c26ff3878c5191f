package models

import "github.com/shopspring/decimal"

type AccountResponse struct {
	AccountID     int64           `json:"accountId"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
}

type GetAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
