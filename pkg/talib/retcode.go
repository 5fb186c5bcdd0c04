package talib

import "fmt"

// RetCode is a TA-Lib return code. Every code except Success is an error.
type RetCode int

const (
	Success RetCode = iota
	LibNotInitialize
	BadParam
	AllocErr
	GroupNotFound
	FuncNotFound
	InvalidHandle
	InvalidParamHolder
	InvalidParamHolderType
	InvalidParamFunction
	InputNotAllInitialize
	OutputNotAllInitialize
	OutOfRangeStartIndex
	OutOfRangeEndIndex
	InvalidListType
	BadObject
	NotSupported
	InternalError RetCode = 5000
)

var retCodeNames = map[RetCode]string{
	Success:                "TA_SUCCESS",
	LibNotInitialize:       "TA_LIB_NOT_INITIALIZE",
	BadParam:               "TA_BAD_PARAM",
	AllocErr:               "TA_ALLOC_ERR",
	GroupNotFound:          "TA_GROUP_NOT_FOUND",
	FuncNotFound:           "TA_FUNC_NOT_FOUND",
	InvalidHandle:          "TA_INVALID_HANDLE",
	InvalidParamHolder:     "TA_INVALID_PARAM_HOLDER",
	InvalidParamHolderType: "TA_INVALID_PARAM_HOLDER_TYPE",
	InvalidParamFunction:   "TA_INVALID_PARAM_FUNCTION",
	InputNotAllInitialize:  "TA_INPUT_NOT_ALL_INITIALIZE",
	OutputNotAllInitialize: "TA_OUTPUT_NOT_ALL_INITIALIZE",
	OutOfRangeStartIndex:   "TA_OUT_OF_RANGE_START_INDEX",
	OutOfRangeEndIndex:     "TA_OUT_OF_RANGE_END_INDEX",
	InvalidListType:        "TA_INVALID_LIST_TYPE",
	BadObject:              "TA_BAD_OBJECT",
	NotSupported:           "TA_NOT_SUPPORTED",
	InternalError:          "TA_INTERNAL_ERROR",
}

// Error returns the TA-Lib name of the code, e.g. TA_BAD_PARAM.
func (r RetCode) Error() string {
	if name, ok := retCodeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("TA_UNKNOWN_ERR(%d)", int(r))
}
