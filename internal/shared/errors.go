// filepath: internal/shared/errors.go
package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// store errors
const (
	ErrNoDocument    = Error("no config document stored")
	ErrBackendClosed = Error("storage backend is closed")
)

// bridge errors
const (
	ErrNoConfigObject = Error("no CONFIG object found in snippet")
	ErrNotAnObject    = Error("imported config is not a JSON object")
)
