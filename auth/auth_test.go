// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// fastHasher keeps tests quick
var fastHasher = BcryptHasher{Cost: bcrypt.MinCost}

func TestBcryptHasher(t *testing.T) {
	digest, err := fastHasher.Hash("s3cret!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(digest, "$2a$") {
		t.Errorf("Hash() = %q, want a bcrypt digest", digest)
	}
	if !fastHasher.Verify("s3cret!", digest) {
		t.Error("Verify() rejected the correct secret")
	}
	if fastHasher.Verify("wrong", digest) {
		t.Error("Verify() accepted a wrong secret")
	}
	if fastHasher.Verify("s3cret!", "not-a-digest") {
		t.Error("Verify() accepted a malformed digest")
	}

	// Salted: two digests of the same secret differ
	other, _ := fastHasher.Hash("s3cret!")
	if other == digest {
		t.Error("Hash() produced identical digests (salt missing)")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	digest, err := BcryptHasher{}.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}

func TestCheckAdmin(t *testing.T) {
	digest, err := fastHasher.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	creds := AdminCredentials{Username: "admin", PasswordHash: digest}

	tests := []struct {
		name     string
		creds    AdminCredentials
		username string
		password string
		wantErr  error
	}{
		{"valid", creds, "admin", "correct horse", nil},
		{"wrong password", creds, "admin", "battery staple", ErrInvalidCredentials},
		{"wrong username", creds, "root", "correct horse", ErrInvalidCredentials},
		{"username case matters", creds, "Admin", "correct horse", ErrInvalidCredentials},
		{"login disabled", AdminCredentials{Username: "admin"}, "admin", "correct horse", ErrLoginDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAdmin(fastHasher, tt.creds, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckAdmin() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// countingHasher records Verify calls
type countingHasher struct {
	calls int
}

func (c *countingHasher) Hash(secret string) (string, error) { return secret, nil }

func (c *countingHasher) Verify(secret, digest string) bool {
	c.calls++
	return secret == digest
}

func TestCheckAdminAlwaysVerifiesPassword(t *testing.T) {
	h := &countingHasher{}
	creds := AdminCredentials{Username: "admin", PasswordHash: "pw"}

	CheckAdmin(h, creds, "someone-else", "pw")
	if h.calls != 1 {
		t.Errorf("Verify() called %d times for unknown user, want 1", h.calls)
	}
}

func BenchmarkCheckAdmin(b *testing.B) {
	digest, _ := fastHasher.Hash("correct horse")
	creds := AdminCredentials{Username: "admin", PasswordHash: digest}
	for i := 0; i < b.N; i++ {
		CheckAdmin(fastHasher, creds, "admin", "correct horse")
	}
}
