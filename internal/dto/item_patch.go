package dto

type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"`
	ImageURL    *string `json:"image_url"`
	LocationID  *uint   `json:"location_id"`
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.Quantity == nil && p.ImageURL == nil && p.LocationID == nil
}

func (p ItemPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	if p.Quantity != nil {
		changes["quantity"] = *p.Quantity
	}
	if p.ImageURL != nil {
		changes["image_url"] = *p.ImageURL
	}
	if p.LocationID != nil {
		changes["location_id"] = *p.LocationID
	}
	return changes
}
