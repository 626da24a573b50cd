package record

import (
	"nftcatalog/internal/domain/record"
)

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name        string  `json:"name,omitempty" doc:"Display name of the NFT"`
	Description string  `json:"description,omitempty" doc:"Free-form description"`
	ImageURL    string  `json:"imageUrl,omitempty" doc:"Image location"`
	RarityScore float64 `json:"rarityScore,omitempty" doc:"Initial rarity score, defaults to 0"`
}

type findInput struct {
	ID string `path:"id" doc:"Record id"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Record id"`
	Body updateRequest
}

// updateRequest is a partial record: absent fields keep their stored
// values. The id is taken from the path only and is never patchable.
type updateRequest struct {
	Name        *string  `json:"name,omitempty" doc:"New display name"`
	Description *string  `json:"description,omitempty" doc:"New description"`
	ImageURL    *string  `json:"imageUrl,omitempty" doc:"New image location"`
	RarityScore *float64 `json:"rarityScore,omitempty" doc:"New rarity score"`
}

type recordOutput struct {
	Body record.Record
}

type listOutput struct {
	Body []record.Record
}
