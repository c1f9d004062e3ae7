/*
Package models defines the shared data structures of the HTTP API.

These models are the wire contract between the server and its clients:
request bodies for the multiply and square endpoints and the response
envelope carrying either a product or a structured error.
*/
package models

// MultiplyRequest is the body of POST /api/v1/multiply.
type MultiplyRequest struct {
	// A and B are the decimal operands, most significant digit first,
	// no sign.
	A string `json:"a"`
	B string `json:"b"`
	// Validate enables the digit-character check on operands. The
	// server forces this on; the field exists so clients can express
	// intent explicitly.
	Validate bool `json:"validate,omitempty"`
}

// SquareRequest is the body of POST /api/v1/square.
type SquareRequest struct {
	// X is the decimal operand to square.
	X string `json:"x"`
	// Validate mirrors MultiplyRequest.Validate.
	Validate bool `json:"validate,omitempty"`
}

// MultiplyResponse is the success envelope for both endpoints.
type MultiplyResponse struct {
	// Product is the decimal result, no leading zeros unless "0".
	Product string `json:"product"`
	// Digits is the length of Product, so clients can size buffers
	// without re-measuring.
	Digits int `json:"digits"`
	// DurationMS is the engine execution time in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// ErrorResponse is the error envelope returned with non-2xx statuses.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
	// Kind classifies the failure: "invalid_operand",
	// "operand_too_large", "convolution_too_large", "timeout" or
	// "internal".
	Kind string `json:"kind,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
