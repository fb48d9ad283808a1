// Package uuid generates time-ordered identifiers for database primary keys.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a new UUIDv7 string. UUIDv7 is time-ordered, which keeps
// b-tree index inserts mostly append-only. Falls back to UUIDv4 if the
// system entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
