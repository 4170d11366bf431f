// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The output is
	// self-describing: algorithm, parameters, salt and digest live in one blob,
	// so Check needs no side lookup. Hashing the same password twice yields
	// different blobs.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It returns false (never an error) for malformed hashes, and runs in time
	// independent of where a mismatch occurs.
	Check(password, hash string) bool
}
