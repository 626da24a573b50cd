package record

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injected into the service so tests
// can freeze it.
type Clock interface {
	Now() time.Time
}

// IDGenerator assigns record identifiers. The production generator
// produces 128-bit random UUIDs; collision probability is negligible,
// so no uniqueness check against the store is made.
type IDGenerator interface {
	NewID() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// UUIDGenerator returns an IDGenerator producing random UUIDv4 strings.
func UUIDGenerator() IDGenerator { return uuidGenerator{} }
