package service

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw123456" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("pw123456", hash) {
		t.Fatalf("verify failed for correct password")
	}
	if h.Verify("pw123457", hash) {
		t.Fatalf("verify succeeded for wrong password")
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password are identical, salt missing")
	}
	if !h.Verify("pw123456", first) || !h.Verify("pw123456", second) {
		t.Fatalf("both salted hashes must verify against the password")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher()

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if h.Verify("pw123456", malformed) {
			t.Fatalf("verify must fail closed for malformed hash %q", malformed)
		}
	}
}
