// Package entity contains the core business objects of the project.
package entity

// Role is reference data: a human-readable authorization label whose
// lifecycle is independent of any account. Accounts reference roles
// through a many-to-many relation.
type Role struct {
	ID   int64  // System-assigned identifier.
	Name string // Unique human-readable label, e.g. "admin".
}
