// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and the admin login check.

# Password Hashing

Hasher is the hashing capability used by the login handler:

	var h auth.Hasher = auth.BcryptHasher{}
	digest, err := h.Hash("secret")
	ok := h.Verify("secret", digest)

BcryptHasher uses bcrypt.DefaultCost unless Cost is set. Digests are
self-describing, so the cost can change without invalidating stored hashes.

# Admin Login

There is a single admin account, configured through ADMIN_USERNAME and
ADMIN_PASSWORD_HASH:

	err := auth.CheckAdmin(h, creds, username, password)

CheckAdmin returns ErrLoginDisabled when no hash is configured and
ErrInvalidCredentials on any mismatch. It issues no tokens or sessions.

Generate a hash with:

	go run . -hash-password 'secret'
*/
package auth
