// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the account record owned by the credential store.
// Password hash and reset-token fields never leave the server.
type User struct {
	UserID       int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	// ResetToken and ResetTokenExpires are both nil when no reset is pending.
	ResetToken        *string    `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public strips everything except the fields a client may see.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the user shape returned by the API.
type PublicUser struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Credentials carries the email/password pair sent on register and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
