// Package cloudauth provides credential resolution and client construction for
// cloud storage and metadata-catalog services, driven by a flat set of string
// configuration properties.
package cloudauth

// ClientFactory represents a cloud provider with any authentication accounted for.
//
// A factory is initialized exactly once with the flat property map supplied by
// the hosting engine and afterwards only reads the ingested settings, so client
// builds may run concurrently. Provider-specific client accessors (storage,
// catalog, and any auxiliary clients) are exposed on the concrete factory type;
// provider.Factory returns this interface, so it would have to be cast to the
// provider's type (e.g. aws.Factory) to build clients.
type ClientFactory interface {
	// Initialize ingests the property map into per-service credential
	// settings. Missing keys default to the empty string for string-valued
	// properties and false for boolean ones. Initialize fails only when the
	// map itself is absent.
	Initialize(properties map[string]string) error

	// Name returns the name of the provider ie: AWS.
	Name() string
}
