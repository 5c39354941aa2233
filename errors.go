package massfmt

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for formatting operations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrUnrenderable indicates the number-rendering engine could not
	// produce a digit string for a value. Fatal for that call: no partial
	// string is ever returned alongside it.
	ErrUnrenderable = constError("value cannot be rendered")

	// ErrParseUnsupported indicates an attempt to parse a formatted mass
	// string back into a value, which this package never supports.
	ErrParseUnsupported = constError("parsing mass strings is not supported")
)
