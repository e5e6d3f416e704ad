package dto

type BoxPatch struct {
	Label       *string `json:"label"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	LocationID  *uint   `json:"location_id"`
}

func (p BoxPatch) Empty() bool {
	return p.Label == nil && p.Description == nil && p.Category == nil && p.LocationID == nil
}

func (p BoxPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Label != nil {
		changes["label"] = *p.Label
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	if p.LocationID != nil {
		changes["location_id"] = *p.LocationID
	}
	return changes
}
