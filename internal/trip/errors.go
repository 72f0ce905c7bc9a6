package trip

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidParameter is returned by Parameters.Validate when a field is out
// of range or names an unknown option. The wrapped message carries the field.
// Callers match it with errors.Is().
const ErrInvalidParameter = constError("invalid trip parameter")
