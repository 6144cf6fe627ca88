package models

import "time"

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// UserPage is one page of the user listing, newest first.
type UserPage struct {
	Data       []*PublicUserWithCount `json:"data"`
	Pagination Pagination             `json:"pagination"`
}

// ProfileImageUpload describes a presigned upload slot for a profile image.
// After uploading to UploadURL the client stores PublicURL as the user's
// profileImageUrl.
type ProfileImageUpload struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
