package middleware

// ErrorResponse mirrors api.Envelope for failures raised before a handler
// runs. It is defined here to keep middleware free of an api import.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errorBody(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
