package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// ObjectError reports a problem with one object of a world
type ObjectError struct {
	Index int
	Err   error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("object %d: %v", e.Index, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}
