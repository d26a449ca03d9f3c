package cli

import "errors"

var (
	ErrKeyMismatch          = errors.New("cli: the keys do not match")
	ErrEmptyKey             = errors.New("cli: key is empty")
	ErrLeadingZero          = errors.New("cli: key must not start with the symbol 0")
	ErrClipboardUnsupported = errors.New("cli: clipboard is not available, use --print")
)
