package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/models"
	"github.com/junhyeong9812/simple-bank-back/src/internal/commons"
	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
	"github.com/junhyeong9812/simple-bank-back/src/internal/logger"
)

type LoginService struct {
	userRepo domain.UserRepository
	verifier domain.CredentialVerifier
}

func NewLoginService(userRepo domain.UserRepository, verifier domain.CredentialVerifier) *LoginService {
	return &LoginService{userRepo: userRepo, verifier: verifier}
}

func (s *LoginService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("login service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("login service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	username := strings.TrimSpace(req.Username)

	user, found, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("login service user lookup failed", err, logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}
	if !found {
		notFound := &domain.UserNotFoundError{Username: username}
		logger.Info("login service unknown username", logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("User not found", notFound.Error()), notFound
	}

	// The password is checked before the status so a blocked user with a
	// wrong password is reported as an invalid password, not as blocked.
	if !s.verifier.Matches(req.Password, user.PasswordHash) {
		logger.Info("login service password mismatch", logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("invalid password", "provided password does not match"), domain.ErrInvalidPassword
	}

	switch user.Status {
	case domain.UserStatusActive:
	case domain.UserStatusBlocked:
		blocked := &domain.BlockedUserError{Username: user.Username}
		logger.Info("login service blocked user", logger.Fields{
			"username": user.Username,
		})
		return commons.ErrorResponse[models.LoginResponse]("blocked user", blocked.Error()), blocked
	default:
		err := fmt.Errorf("unknown user status: %s", user.Status)
		logger.Error("login service unexpected user status", err, logger.Fields{
			"username": user.Username,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	response := models.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
	}

	logger.Info("login service login success", logger.Fields{
		"userId":   response.UserID,
		"username": response.Username,
	})

	return commons.SuccessResponse("login successful", response), nil
}
