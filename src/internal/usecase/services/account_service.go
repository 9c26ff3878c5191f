package services

import (
	"context"

	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/models"
	"github.com/junhyeong9812/simple-bank-back/src/internal/commons"
	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
	"github.com/junhyeong9812/simple-bank-back/src/internal/logger"
)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// GetAccounts performs no existence check on the user: an unknown user id,
// non-positive ids included, and a user with no accounts both yield an empty
// list.
func (s *AccountService) GetAccounts(ctx context.Context, userID int64) (commons.Response[models.GetAccountsResponse], error) {
	logger.Info("account service get accounts request", logger.Fields{
		"userId": userID,
	})

	accounts, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("account service get accounts failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.GetAccountsResponse]("failed to get accounts", "Unable to fetch accounts right now"), err
	}

	views := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, models.AccountResponse{
			AccountID:     account.ID,
			AccountNumber: account.AccountNumber,
			Balance:       account.Balance,
			Status:        string(account.Status),
		})
	}

	response := models.GetAccountsResponse{Accounts: views}

	logger.Info("account service get accounts success", logger.Fields{
		"userId": userID,
		"count":  len(views),
	})

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}
