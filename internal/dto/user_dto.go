package dto

// UserProfileResponse never carries the id or the password hash.
type UserProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
