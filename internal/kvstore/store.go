// Package kvstore provides the persistence layer: a small key-value store
// of JSON-serialized records with interchangeable backends.
package kvstore

// Store is a key-value store of serialized blobs. Values are expected to
// be valid JSON documents.
type Store interface {
	// Get returns the blob stored under key; ok is false when absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set durably stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}
