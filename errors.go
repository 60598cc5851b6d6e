package cloudauth

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrMissingProperties - Initialize was called without a property map
	ErrMissingProperties = Error("properties map is required")

	// ErrNotInitialized - a client build was requested before Initialize was called
	ErrNotInitialized = Error("client factory has not been initialized")

	// ErrNoCredentialSource - default SDK credential resolution is disabled but neither an
	// instance profile nor a complete access/secret key pair was configured
	ErrNoCredentialSource = Error("no credential source configured: requires instance profile or access/secret key pair")
)
