package record

import (
	"context"
)

// Repository is the durable keyed store for records and the single
// owner of truth for record existence. All existence checks go through
// Get and Remove; both return ErrNotFound when nothing is stored under
// the given id.
type Repository interface {
	// Put stores or overwrites the record at rec.ID.
	Put(ctx context.Context, rec *Record) error

	// Get returns the record stored under id.
	Get(ctx context.Context, id string) (*Record, error)

	// Values enumerates all stored records in unspecified order.
	// Presentation ordering is imposed by the service.
	Values(ctx context.Context) ([]Record, error)

	// Remove deletes the record under id and returns the removed value.
	// Repeated calls after the first are no-ops returning ErrNotFound.
	Remove(ctx context.Context, id string) (*Record, error)
}
