package ports

// PasswordHasher derives and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A
	// malformed hash fails closed (false), never panics.
	Verify(plaintext, hash string) bool
}
