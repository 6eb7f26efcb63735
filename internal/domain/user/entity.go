package user

import "time"

// User is a login account optionally linked to an employee. Role is nullable:
// an employee whose account carries a role counts as active.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         *string
	CreatedAt    time.Time
}
