package models

// ResponseBody is the uniform envelope wrapping every API response.
// Exactly one of Data and Message is set: Data on success, Message on
// failure.
type ResponseBody struct {
	// Status mirrors the HTTP status code of the response so that
	// clients reading only the body still see the outcome.
	Status int `json:"status"`

	// Data holds the success payload.
	Data any `json:"data,omitempty"`

	// Message holds the failure description, typically with an "error"
	// key and, where applicable, the offending identifier.
	Message map[string]any `json:"message,omitempty"`
}

// NewDataResponse builds a success envelope.
func NewDataResponse(status int, data any) ResponseBody {
	return ResponseBody{Status: status, Data: data}
}

// NewErrorResponse builds a failure envelope with the given error text.
func NewErrorResponse(status int, errText string) ResponseBody {
	return ResponseBody{Status: status, Message: map[string]any{"error": errText}}
}
