package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Only the repository layer touches these structs directly;
// handlers define their own response shapes, so no json tags appear here.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login identifier, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
