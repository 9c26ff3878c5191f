package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/models"
	"github.com/junhyeong9812/simple-bank-back/src/internal/commons"
	"github.com/junhyeong9812/simple-bank-back/src/internal/logger"
)

type LoginService interface {
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
}

type UserInfoService interface {
	GetUserInfo(ctx context.Context, userID int64) (commons.Response[models.GetUserInfoResponse], error)
}

type UserController struct {
	loginService LoginService
	userService  UserInfoService
}

func NewUserController(loginService LoginService, userService UserInfoService) *UserController {
	return &UserController{loginService: loginService, userService: userService}
}

func (c *UserController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	infoHandler := http.Handler(http.HandlerFunc(c.getUserInfo))
	if authMiddleware != nil {
		infoHandler = authMiddleware(infoHandler)
	}
	// Login stays outside the channel auth: it is the credential check itself.
	mux.Handle("POST /api/users/login", http.HandlerFunc(c.login))
	mux.Handle("GET /api/users/{userId}", infoHandler)
}

func (c *UserController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.LoginResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.loginService.Login(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := errorStatus(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *UserController) getUserInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.GetUserInfoResponse]("validation failed", "userId must be an integer")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.userService.GetUserInfo(r.Context(), userID)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := errorStatus(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
