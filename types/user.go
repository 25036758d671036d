package types

import "time"

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user, assigned by the store.
	ID int `json:"id" db:"id"`

	// Name is the unique login name chosen at registration. There is no
	// rename operation; the name is immutable after creation.
	Name string `json:"name" db:"name"`

	// Email is the user's email address. It is optional and the only
	// mutable field.
	Email *string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
