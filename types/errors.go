package types

import "cosmossdk.io/errors"

var (
	// ErrInvalidRequest is returned when a request or its exponent is unset.
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")
	// ErrExponentOutOfRange is returned when the magnitude of an exponent
	// exceeds the supported domain.
	ErrExponentOutOfRange = errors.Register(ModuleName, 3, "exponent out of range")
	// ErrIntOverflow is returned when an intermediate value would exceed the
	// 256-bit ceiling of the integer type.
	ErrIntOverflow = errors.Register(ModuleName, 4, "integer overflow")
)
