package domain

// CredentialVerifier matches a plaintext password against a stored hash.
// The hash format is opaque to the core.
type CredentialVerifier interface {
	Matches(password, passwordHash string) bool
}
