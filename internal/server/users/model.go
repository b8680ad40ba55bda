package users

import "time"

// User is a registered account as stored in the credential store.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}
