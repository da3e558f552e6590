// Package models defines data models for the account service.
package models

import "time"

// User represents an account holder. The password hash is never serialized.
type User struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Password   []byte    `json:"-"`
	ProfilePic string    `json:"profilePic"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewUser carries the fields required to create an account. Password must
// already be hashed by the caller; the store never hashes.
type NewUser struct {
	Email      string
	FullName   string
	Password   []byte
	ProfilePic string
	IsVerified bool
}

// UserUpdate is a partial mutation. Nil fields are left untouched.
// Password, when set, must already be hashed.
type UserUpdate struct {
	Email      *string
	FullName   *string
	Password   []byte
	ProfilePic *string
}
