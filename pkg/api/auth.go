package api

// LoginRequest represents the credentials sent to POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUser is the minimal identity nested in a successful login payload.
type LoginUser struct {
	Username string `json:"username"`
}

// LoginData is the payload of a successful login:
// an opaque bearer token plus the user it belongs to.
type LoginData struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
