package handlers

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := hashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if hash == "" || hash == "p@ssw0rd" {
		t.Fatalf("expected salted hash, got %q", hash)
	}
	if !checkPassword(hash, "p@ssw0rd") {
		t.Fatalf("expected password to verify")
	}
	if checkPassword(hash, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := hashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	h2, err := hashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}
