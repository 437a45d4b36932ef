package models

import "time"

// User is an account that owns transactions.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password. It never leaves the
	// server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the input of registration and login.
type Credentials struct {
	Email    string
	Password string
	Username string
}

// PasswordChange is the input of a password change.
type PasswordChange struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
