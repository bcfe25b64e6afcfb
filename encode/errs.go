package encode

import "errors"

var (
	// ErrUnsupportedValue reports a value with no textual mapping in
	// PVL. The error message carries the value's representation.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrEncodingRejected reports a text value the quoting rules
	// cannot represent in the active dialect.
	ErrEncodingRejected = errors.New("encoding rejected")
)
