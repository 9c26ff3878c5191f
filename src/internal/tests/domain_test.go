package services_test

import (
	"testing"

	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

func TestUserStatusPredicates(t *testing.T) {
	active := domain.User{ID: 1, Username: "user1", Status: domain.UserStatusActive}
	if !active.IsActive() || active.IsBlocked() {
		t.Fatal("expected active user to be active and not blocked")
	}

	blocked := domain.User{ID: 2, Username: "blockedUser", Status: domain.UserStatusBlocked}
	if blocked.IsActive() || !blocked.IsBlocked() {
		t.Fatal("expected blocked user to be blocked and not active")
	}
}

func TestAccountStatusPredicates(t *testing.T) {
	active := domain.Account{ID: 1, Status: domain.AccountStatusActive}
	if !active.IsActive() || active.IsClosed() {
		t.Fatal("expected active account to be active and not closed")
	}

	closed := domain.Account{ID: 2, Status: domain.AccountStatusClosed}
	if closed.IsActive() || !closed.IsClosed() {
		t.Fatal("expected closed account to be closed and not active")
	}

	frozen := domain.Account{ID: 3, Status: domain.AccountStatusFrozen}
	if frozen.IsActive() || frozen.IsClosed() {
		t.Fatal("expected frozen account to be neither active nor closed")
	}
}
