package common

import "github.com/pkg/errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidConfig is returned by constructors, never by GetLimits.
	ErrorInvalidConfig = errors.New("invalid interval config")
	ErrorEmptyInput    = errors.New("no usable values")
	ErrorOutputType    = errors.New("output buffer can not hold the result")
)
