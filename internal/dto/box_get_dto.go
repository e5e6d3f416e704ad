package dto

// ItemSummary is the trimmed item shape embedded in box responses.
type ItemSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"image_url,omitempty"`
	LocationID  *uint  `json:"location_id"`
}

// BoxGetDTO is a box hydrated with its current members. Items is always a
// slice, never nil, so empty boxes serialize as [].
type BoxGetDTO struct {
	ID          uint          `json:"id"`
	UserID      uint          `json:"user_id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	LocationID  *uint         `json:"location_id"`
	Items       []ItemSummary `json:"items"`
}

// BoxItemRow is one row of the boxes LEFT JOIN box_items JOIN items
// aggregation query. Item columns are nullable because empty boxes still
// produce a row.
type BoxItemRow struct {
	BoxID           uint
	UserID          uint
	Label           string
	BoxDescription  string
	BoxCategory     string
	BoxLocationID   *uint
	ItemID          *uint
	ItemName        *string
	ItemDescription *string
	ItemCategory    *string
	Quantity        *int
	ImageURL        *string
	ItemLocationID  *uint
}
