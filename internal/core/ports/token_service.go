package ports

// TokenService issues and verifies signed, stateless session tokens.
// A token binds the subject's user id under a process-wide secret.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the user id carried by the token, or
	// domain.ErrInvalidToken for malformed, tampered or expired tokens.
	Verify(token string) (string, error)
}
