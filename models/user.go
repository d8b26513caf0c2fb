package models

import "time"

// User holds the structure for a record in the user collection.
// PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserDetails is the request body accepted by POST /users
type UserDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the request body accepted by POST /login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserCreatedResponse is returned by POST /users
type UserCreatedResponse struct {
	Message string `json:"message"`
	NewUser User   `json:"newUser"`
}
