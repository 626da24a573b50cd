package record

import (
	"time"
)

// Record is the catalog entity: an NFT with identity, descriptive
// fields and a rarity score used for ranked listings.
type Record struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	RarityScore float64    `json:"rarityScore"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CreateInput carries the caller-supplied fields of a new record.
// ID, CreatedAt and the zero RarityScore default are assigned by the
// service, never by the caller.
type CreateInput struct {
	Name        string
	Description string
	ImageURL    string
	RarityScore float64
}

// Patch is a partial update. Nil fields keep their stored values.
// ID and CreatedAt are not part of the patch and can never change.
type Patch struct {
	Name        *string
	Description *string
	ImageURL    *string
	RarityScore *float64
}
