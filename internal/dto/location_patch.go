package dto

type LocationPatch struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Note     *string `json:"note"`
}

func (p LocationPatch) Empty() bool {
	return p.Name == nil && p.Location == nil && p.Note == nil
}

// Changes returns the allow-listed column assignments for this patch.
func (p LocationPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	if p.Note != nil {
		changes["note"] = *p.Note
	}
	return changes
}
