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

type AccountsService interface {
	GetAccounts(ctx context.Context, userID int64) (commons.Response[models.GetAccountsResponse], error)
}

type AccountController struct {
	service AccountsService
}

func NewAccountController(service AccountsService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.getAccounts))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("GET /api/accounts/user/{userId}", handler)
}

func (c *AccountController) getAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.GetAccountsResponse]("validation failed", "userId must be an integer")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.GetAccounts(r.Context(), userID)
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

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
