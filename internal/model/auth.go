package model

type LoginRequest struct {
	Email    string `json:"correo_electronico" binding:"required,email"`
	Password string `json:"contrasena" binding:"required"`
}

type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Greeting    string        `json:"mensaje"`
	User        *UserWithRole `json:"usuario"`
}
