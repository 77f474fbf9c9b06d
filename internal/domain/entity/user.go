package entity

import "time"

// User is the aggregate root for the credential store.
// Password holds a bcrypt hash, never plaintext.
//
// Email is intended to be unique but the schema does not enforce it;
// concurrent registrations with the same address create two independent
// accounts. Kept as documented behavior.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
