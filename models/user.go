package models

import "time"

// UsernameMaxLength is the maximum length of a username.
const UsernameMaxLength = 150

// User represents an account that can author posts.
// Credential-related data must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique, human-readable account name. It is what the
	// API shows as a post's author.
	Username string `json:"username"`

	// Password is the plain-text password supplied at registration or login.
	// It is only ever populated on input and is never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted in the database.
	PasswordHash string `json:"-"`

	// IsStaff grants the right to modify and delete any post.
	IsStaff bool `json:"is_staff"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Requester returns the identity of u as seen by request handlers.
func (u User) Requester() *Requester {
	return &Requester{
		UserID:   u.UserID,
		Username: u.Username,
		IsStaff:  u.IsStaff,
	}
}
