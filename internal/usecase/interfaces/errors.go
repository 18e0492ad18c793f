package interfaces

import "errors"

// Contract errors returned by collaborator implementations.
var (
	// ErrMalformedResponse means the analyzer answered but the payload is not the expected structure.
	ErrMalformedResponse = errors.New("malformed analyzer response")
	// ErrInvalidDocument means the payload could not be read as a document at all.
	ErrInvalidDocument = errors.New("invalid document")
)
