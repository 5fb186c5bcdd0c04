package core

import "errors"

var (
	ErrResultNotFound = errors.New("result not found")
	ErrEmptyDataframe = errors.New("dataframe has no rows")
)
