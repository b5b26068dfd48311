package storage

// KV is the injected persistence backend: a flat namespace of opaque blobs.
// The repository stores each collection as one JSON blob under one key, so
// every mutation is a full read-modify-write of that blob.
type KV interface {
	// Read returns the blob stored under key. ok is false when the key has
	// never been written; that is not an error.
	Read(key string) (value []byte, ok bool, err error)
	Write(key string, value []byte) error
	Delete(key string) error
	Close() error
}
