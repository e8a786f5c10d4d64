// Package types holds the wire envelopes shared by every handler. Success
// bodies nest under "data" and failures under "error", so clients can branch
// on shape before reading a single field.
package types

// SuccessEnvelope wraps every 2xx body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the serialized form of the failure taxonomy. Code is one of the
// closed set of taxonomy codes. Retryable tells clients whether backing off
// and repeating the exact same call can ever succeed; it is false for
// business rejections and true for transient infrastructure trouble.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Details   any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every non-2xx body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
