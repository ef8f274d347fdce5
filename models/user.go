// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the dashboard operator account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque user identifier. It becomes the JWT subject.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password holds the bcrypt hash when loaded from the store and
	// the plain-text password only while seeding.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the payload of the sign-in form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
