package hub

import (
	"encoding/json"
)

const accountCharacterModelsPath = "/api/account/character_models"

// ListParams are the query parameters of a character model listing.
type ListParams struct {
	MaxID string `url:"max_id,omitempty"`
	Count int    `url:"count"`
}

type Link struct {
	Href string `json:"href"`
}

type Links struct {
	Next *Link `json:"next,omitempty"`
}

// CollectionResponse is a page of character models as served by the hub.
// Models are kept as raw JSON so they reach the client exactly as the hub sent them.
type CollectionResponse struct {
	Links Links             `json:"_links"`
	Data  []json.RawMessage `json:"data"`
}

// NextHref returns the href of the "next" relation, or "" on the last page.
func (r *CollectionResponse) NextHref() string {
	if r.Links.Next == nil {
		return ""
	}
	return r.Links.Next.Href
}
