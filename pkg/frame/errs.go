package frame

import "errors"

// Errors returned by frame operations, usually wrapped with context.
var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrShapeMismatch    = errors.New("lengths don't match")
	ErrNotStruct        = errors.New("value is not a struct")
	ErrNotColumn        = errors.New("value is not a column")
	ErrFieldNotFound    = errors.New("struct field not found")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrDType            = errors.New("unexpected dtype")
	ErrComputation      = errors.New("computation failed")
)
