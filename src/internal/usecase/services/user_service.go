package services

import (
	"context"

	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/models"
	"github.com/junhyeong9812/simple-bank-back/src/internal/commons"
	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
	"github.com/junhyeong9812/simple-bank-back/src/internal/logger"
)

type UserService struct {
	userRepo domain.UserRepository
}

func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserInfo(ctx context.Context, userID int64) (commons.Response[models.GetUserInfoResponse], error) {
	logger.Info("user service get user info request", logger.Fields{
		"userId": userID,
	})

	user, found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("user service get user info failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.GetUserInfoResponse]("failed to get user", "Unable to fetch user right now"), err
	}
	if !found {
		notFound := &domain.UserNotFoundError{UserID: userID}
		return commons.ErrorResponse[models.GetUserInfoResponse]("User not found", notFound.Error()), notFound
	}

	response := models.GetUserInfoResponse{
		UserID:   user.ID,
		Username: user.Username,
		Status:   string(user.Status),
	}

	logger.Info("user service get user info success", logger.Fields{
		"userId":   response.UserID,
		"username": response.Username,
		"status":   response.Status,
	})

	return commons.SuccessResponse("user fetched successfully", response), nil
}
