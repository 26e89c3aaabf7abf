package models

// User is the account as returned by the API.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// UserUpdate carries the fields to change; nil fields are left alone.
// OldPassword is required whenever Password is set.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	OldPassword *string `json:"old_password,omitempty"`
}
