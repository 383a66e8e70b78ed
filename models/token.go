// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload of a session token.
//
// Besides the registered claims (iss, iat, exp) it binds the user ID and
// email so that a verified token resolves to an [Identity] without a
// database round trip.
type Claims struct {
	jwt.RegisteredClaims

	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// Token is a signed session token together with its decoded claims.
type Token struct {
	Claims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// Identity returns the caller bound to the token.
func (t Token) Identity() Identity {
	return Identity{UserID: t.UserID, Email: t.Email}
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
