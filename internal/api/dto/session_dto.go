package dto

// LoginRequest is the login dialog payload.
type LoginRequest struct {
	Role     string `json:"role" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// IdentityResponse describes who is logged in.
type IdentityResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Initials    string `json:"initials"`
	AvatarURL   string `json:"avatar_url"`
}

// SessionResponse is the top-level session state.
type SessionResponse struct {
	Role          string            `json:"role"`
	Authenticated bool              `json:"authenticated"`
	Identity      *IdentityResponse `json:"identity,omitempty"`
}
