package schemas

// TokenRequest carries the form fields of the login endpoint.
type TokenRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
