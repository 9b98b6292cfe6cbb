package dto

// Error represents a standard error response
type Error struct {
	Error  string `json:"error" example:"tenant not found"`
	Code   string `json:"code" example:"not_found"`
	Reason string `json:"reason,omitempty" example:"email_mismatch"`
}
