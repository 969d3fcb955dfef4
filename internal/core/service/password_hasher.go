package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. 12 rounds keeps the derivation
// deliberately expensive to resist offline brute force.
const hashCost = 12

// BcryptHasher hashes passwords with bcrypt. The salt and cost are
// embedded in the produced hash, so verification needs no side state.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time. Malformed hashes fail closed.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
