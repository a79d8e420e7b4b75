package models

import "time"

// AdminID is the subject of admin tokens. No user record carries it.
const AdminID = "admin"

// Identity is the caller resolved from a bearer token: either a stored user
// or the virtual admin. Consumers switch on the concrete type.
type Identity interface {
	// SubjectID is the id the token was issued for.
	SubjectID() string
	identity()
}

// UserIdentity is a caller backed by a user record.
type UserIdentity struct {
	User *User
}

func (u UserIdentity) SubjectID() string { return u.User.ID }
func (UserIdentity) identity()           {}

// AdminIdentity is the virtual admin materialized from an admin token.
type AdminIdentity struct{}

func (AdminIdentity) SubjectID() string { return AdminID }
func (AdminIdentity) identity()         {}

// Profile is the synthetic account shown for the admin on /auth/me.
func (AdminIdentity) Profile(now time.Time) User {
	return User{
		ID:        AdminID,
		Email:     "admin@mavecode.id",
		Name:      "Admin",
		IsPremium: true,
		CreatedAt: now,
	}
}
