// Package model defines the records shared by the two services.
package model

// User is a registered account in the users service.
//
// PasswordHash is a self-contained bcrypt string (salt and cost embedded).
// The json:"-" tag keeps it out of every response body. Email is stored
// canonicalized (trimmed, lower-cased) by the service layer, so lookups and
// the uniqueness constraint are case-insensitive in effect.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
