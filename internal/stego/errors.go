package stego

import (
	"errors"
	"fmt"
)

// Error kinds returned by the codec. Use errors.Is to match them.
var (
	ErrCapacityExceeded = errors.New("payload does not fit in carrier")
	ErrUnsupportedTag   = errors.New("unsupported method tag")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrTagOccupied      = errors.New("method tag slot already written")
	ErrNoJPEGCodec      = errors.New("no JPEG codec configured")
)

// CapacityError reports the sizes involved in a failed fit check.
type CapacityError struct {
	Method    Method
	Needed    int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %s needs %d byte slots, carrier has %d",
		ErrCapacityExceeded, e.Method, e.Needed, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
