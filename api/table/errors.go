package table

type ErrorCode string

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

const (
	// ErrParse represents errors when a body cannot be parsed as CSV or JSON
	ErrParse ErrorCode = "ParseError"

	// ErrUnexpectedShape represents JSON payloads that hold no recognizable rows
	ErrUnexpectedShape ErrorCode = "UnexpectedShape"
)
