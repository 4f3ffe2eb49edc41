package api

// ErrorCode defines error types for API operations
type ErrorCode string

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

const (
	// ErrAllSourcesFailed represents exhaustion of every candidate source
	ErrAllSourcesFailed ErrorCode = "AllSourcesFailed"

	// ErrInvalidOptions represents a request with an unknown dataset
	ErrInvalidOptions ErrorCode = "InvalidOptions"

	// ErrBadStatus represents a non-success HTTP status from a candidate
	ErrBadStatus ErrorCode = "BadStatus"

	// ErrEmptyBody represents an empty or whitespace-only response body
	ErrEmptyBody ErrorCode = "EmptyBody"

	// ErrEmptyTable represents a body that parsed into zero rows
	ErrEmptyTable ErrorCode = "EmptyTable"
)
