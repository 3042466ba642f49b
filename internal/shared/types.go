package shared

// shared types across the application
// 1st: identity of the caller, set by the auth middleware
// 2nd: auth claims carried by the bearer token

// Identity is who is making the request. The zero value is an anonymous caller.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authenticated reports whether the request carried a valid token.
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// AuthClaims is the application part of the JWT payload.
type AuthClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
