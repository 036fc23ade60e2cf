package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitProgressRequest is the request body for submitting a finished run.
// Pointers distinguish missing fields from zero values; decoding rejects
// non-numeric and fractional inputs.
type SubmitProgressRequest struct {
	Wave  *int64 `json:"wave"`
	Score *int64 `json:"score"`
}
