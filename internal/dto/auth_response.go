package dto

import "time"

// LoginResponse carries the access token issued on login. The rotating
// refresh token travels only in the HTTP-only cookie, never in the body.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RefreshTokenResponse carries the access token issued on refresh.
type RefreshTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
