package cli

import "errors"

// ErrUsage marks failures caused by how openapi-composables was invoked:
// unknown flags, a missing --input, an unusable config file, or an output
// target the generator refuses to touch. main prints these as-is and exits
// nonzero; anything not matching ErrUsage is an internal failure.
var ErrUsage = errors.New("cli usage error")

// usageError carries the user-facing message while matching ErrUsage in
// errors.Is checks, so commands can return rich text without callers
// string-matching it.
type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}
