package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InternalError is returned when an invariant of the indexer is broken.
	InternalError = ErrorKind("Internal Error")

	// InvalidArgument is returned when an input is malformed or out of range.
	InvalidArgument = ErrorKind("Invalid Argument")

	Unsupported = ErrorKind("Unsupported")

	// ConflictSetting is returned when the stored state does not match the running configuration.
	ConflictSetting = ErrorKind("Conflict Setting")

	SomethingWentWrong = ErrorKind("Something Went Wrong")
	Timeout            = ErrorKind("Timeout")
	Closed             = ErrorKind("Closed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
