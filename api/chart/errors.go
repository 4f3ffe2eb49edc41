package chart

type ErrorCode string

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

const (
	// ErrColumnMissing represents a request naming a column the table
	// does not have
	ErrColumnMissing ErrorCode = "ColumnMissing"

	// ErrNoRenderableRows represents a table whose rows all fell out
	// during projection (no numeric values, no known regions)
	ErrNoRenderableRows ErrorCode = "NoRenderableRows"
)
