package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_VALIDATION       ErrorCode = 1004

	// Uploads
	ErrorCode_UPLOAD_MISSING_FILE      ErrorCode = 2000
	ErrorCode_UPLOAD_UNSUPPORTED_MEDIA ErrorCode = 2001
	ErrorCode_UPLOAD_TOO_LARGE         ErrorCode = 2002
	ErrorCode_UPLOAD_NOT_FOUND         ErrorCode = 2003

	// AI pipeline
	ErrorCode_AI_MISSING_CREDENTIAL   ErrorCode = 3000
	ErrorCode_AI_EMPTY_TEXT           ErrorCode = 3001
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3002
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3003
	ErrorCode_AI_UPSTREAM_FAILED      ErrorCode = 3004

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_VALIDATION:                 "VALIDATION",
	ErrorCode_UPLOAD_MISSING_FILE:        "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_UNSUPPORTED_MEDIA:   "UPLOAD_UNSUPPORTED_MEDIA",
	ErrorCode_UPLOAD_TOO_LARGE:           "UPLOAD_TOO_LARGE",
	ErrorCode_UPLOAD_NOT_FOUND:           "UPLOAD_NOT_FOUND",
	ErrorCode_AI_MISSING_CREDENTIAL:      "AI_MISSING_CREDENTIAL",
	ErrorCode_AI_EMPTY_TEXT:              "AI_EMPTY_TEXT",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_UPSTREAM_FAILED:         "AI_UPSTREAM_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON payloads
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
