// Package passwords provides one-way credential hashing and verification.
//
// Digests are salted per call, so hashing the same plaintext twice yields two
// different digests that both verify. There is no decryption path.
package passwords

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of plaintext.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the digest, using bcrypt's
// constant-time comparison. Malformed digests verify as false, never error.
func Verify(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
