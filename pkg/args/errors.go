// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import "fmt"

// PreconditionError reports a violated configuration precondition: a
// malformed factory reference, a factory declaring formal parameters or
// a factory return value of an unsupported shape.  The offending
// identifier is embedded verbatim in the message.
type PreconditionError struct {
	Message string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string { return e.Message }

func preconditionf(format string, aa ...any) *PreconditionError {
	return &PreconditionError{Message: fmt.Sprintf(format, aa...)}
}

// UsageError reports a framework usage failure during resolution or
// invocation: a factory method which cannot be found, an external
// factory type which is not registered or the invocation of a
// non-static factory while no test instance is available.
type UsageError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause if any.
func (e *UsageError) Unwrap() error { return e.Cause }

func usagef(format string, aa ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, aa...)}
}
