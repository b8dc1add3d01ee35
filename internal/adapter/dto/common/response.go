package common

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Status  string            `json:"status" example:"error"`
	Code    string            `json:"code" example:"AI_EMPTY_TEXT"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"v1"`
}
