package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier matches plaintext passwords against bcrypt hashes stored by
// the out-of-scope registration process.
type BcryptVerifier struct{}

func NewBcryptVerifier() BcryptVerifier {
	return BcryptVerifier{}
}

func (BcryptVerifier) Matches(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

// HashPassword exists for seeding and tests; the service itself never writes
// credentials.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
