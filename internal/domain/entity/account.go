// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the identity record of a registered credential holder.
// The password hash is write-only from the outside world: it is never
// serialized into responses or log lines.
type Account struct {
	ID           int64     // System-assigned identifier, immutable once created.
	Username     string    // Display name; required but not unique.
	Email        string    // Login identifier; unique across all accounts (case-sensitive).
	PasswordHash string    // bcrypt hash of the secret; never the plaintext itself.
	Roles        []Role    // Authorization roles, maintained with set semantics.
	CreatedAt    time.Time // Set by the store on first save.
	UpdatedAt    time.Time // Refreshed by the store on every mutation.
}

// AddRole adds a role to the account, preserving set semantics.
// It reports whether the role was actually added; assigning a role the
// account already holds is a no-op.
func (a *Account) AddRole(role Role) bool {
	if a.HasRole(role.Name) {
		return false
	}
	a.Roles = append(a.Roles, role)

	return true
}

// HasRole reports whether the account holds a role with the given name.
func (a *Account) HasRole(name string) bool {
	for _, r := range a.Roles {
		if r.Name == name {
			return true
		}
	}

	return false
}

// RoleNames returns the names of the account's roles, in assignment order.
func (a *Account) RoleNames() []string {
	names := make([]string, 0, len(a.Roles))
	for _, r := range a.Roles {
		names = append(names, r.Name)
	}

	return names
}
