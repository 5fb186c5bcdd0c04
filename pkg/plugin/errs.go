package plugin

import "errors"

// Errors returned by the registry.
var (
	ErrFunctionNotFound  = errors.New("function not found")
	ErrDuplicateFunction = errors.New("function already registered")
	ErrInvalidFunction   = errors.New("invalid function definition")
	ErrUnknownParam      = errors.New("unknown parameter")
	ErrParamOutOfRange   = errors.New("parameter out of range")
	ErrParamNotInteger   = errors.New("parameter must be an integer")
)
