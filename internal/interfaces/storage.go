// internal/interfaces/storage.go
package interfaces

// Store is a string key-value blob store for persisted progression.
// Implementations may fail silently (quota, disabled storage); callers fall
// back to defaults when a key is absent or its value does not parse.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
	Remove(key string)
}
