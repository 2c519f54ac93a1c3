package dto

type AdminLoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{OK: false, Error: msg}
}
