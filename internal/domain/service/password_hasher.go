// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the
// domain pure. There is deliberately no decode operation: the hash is one-way.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call
	// salts independently, so hashing the same input twice yields
	// different outputs.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time
	// and reports whether they match.
	Check(password, hash string) bool
}
