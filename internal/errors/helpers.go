package errors

import "errors"

// As wraps errors.As for the package's *Error type.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code from an error chain. A nil error is CodeOK; an
// error without an *Error in its chain is CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var structured *Error
	if errors.As(err, &structured) {
		return structured.Code
	}

	return CodeInternal
}

// GetMessage returns the user-facing message from an error chain.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var structured *Error
	if errors.As(err, &structured) {
		return structured.Message
	}

	return err.Error()
}

// GetMeta returns metadata from an error chain, or nil.
func GetMeta(err error) map[string]interface{} {
	var structured *Error
	if errors.As(err, &structured) {
		return structured.Meta
	}
	return nil
}

// IsNotFound reports whether the error chain carries CodeNotFound.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument reports whether the error chain carries CodeInvalidArgument.
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists reports whether the error chain carries CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition reports whether the error chain carries
// CodeFailedPrecondition.
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal reports whether the error chain carries CodeInternal.
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable reports whether the error chain carries CodeUnavailable.
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsAborted reports whether the error chain carries CodeAborted.
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsOutOfRange reports whether the error chain carries CodeOutOfRange.
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}
