package handler

// messageResponse is the success acknowledgment envelope.
type messageResponse struct {
	Msg string `json:"msg"`
}

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	// The original API spells this field without a separator.
	ConfirmPassword string `json:"confirmpassword" validate:"eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}
