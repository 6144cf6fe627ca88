// Package models defines the entities persisted by the server and the
// projections returned to API clients.
package models

import "time"

// User is the full user record, including the email address. It is only
// returned by single-record operations.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"displayName"`
	Bio             *string   `json:"bio"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PublicUser is the projection used in listings: a User without the email.
type PublicUser struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"displayName"`
	Bio             *string   `json:"bio"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserCount aggregates a user's relations. Followers are follows pointing at
// the user, Following are follows made by the user.
type UserCount struct {
	Posts     int64 `json:"posts"`
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

type UserWithCount struct {
	User
	Count UserCount `json:"_count"`
}

type PublicUserWithCount struct {
	PublicUser
	Count UserCount `json:"_count"`
}

// NewUser carries the fields accepted on creation. Empty optional fields
// are stored as NULL.
type NewUser struct {
	Email           string
	Username        string
	DisplayName     string
	Bio             *string
	ProfileImageURL *string
}

// UserPatch lists the user fields a partial update may touch. Fields whose
// Set flag is false are left unchanged.
type UserPatch struct {
	DisplayName     Optional[string] `json:"displayName"`
	Bio             Optional[string] `json:"bio"`
	ProfileImageURL Optional[string] `json:"profileImageUrl"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return !p.DisplayName.Set && !p.Bio.Set && !p.ProfileImageURL.Set
}
