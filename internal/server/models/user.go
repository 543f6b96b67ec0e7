package models

import "time"

// User is the identity record. RefreshToken is the single authorized
// refresh-token slot: at most one value is valid per user at any instant,
// and issuing a new one unconditionally replaces the previous one.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	Role         string
	PasswordHash string
	RefreshToken *string
	AvatarKey    string
	CoverKey     string
	CreatedAt    time.Time
}
