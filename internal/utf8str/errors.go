package utf8str

import "errors"

var (
	// ErrNullArgument is returned by FromText when the text pointer is nil.
	ErrNullArgument = errors.New("text argument is nil")

	// ErrInvalidFormat is returned by TryFormat for any format specifier
	// other than the default empty one.
	ErrInvalidFormat = errors.New("unsupported format specifier")
)

// NotFound is the sentinel returned by the index operations when the target
// does not occur in the value.
const NotFound = -1
