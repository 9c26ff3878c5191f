package models

import "strings"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return &ValidationError{Reason: strings.Join(errs, "; ")}
	}

	return nil
}

type LoginResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type GetUserInfoResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Status   string `json:"status"`
}
