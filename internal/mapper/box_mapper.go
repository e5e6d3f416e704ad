package mapper

import (
	"stashed/internal/dto"
	"stashed/internal/models"
)

func ToBoxGetDTO(box *models.Box, items []dto.ItemSummary) *dto.BoxGetDTO {
	if items == nil {
		items = make([]dto.ItemSummary, 0)
	}
	return &dto.BoxGetDTO{
		ID:          box.ID,
		UserID:      box.UserID,
		Label:       box.Label,
		Description: box.Description,
		Category:    box.Category,
		LocationID:  box.LocationID,
		Items:       items,
	}
}

func ToItemSummary(item *models.Item) dto.ItemSummary {
	return dto.ItemSummary{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Quantity:    item.Quantity,
		ImageURL:    item.ImageURL,
		LocationID:  item.LocationID,
	}
}

func ToItemSummaries(items []models.Item) []dto.ItemSummary {
	summaries := make([]dto.ItemSummary, 0, len(items))
	for i := range items {
		summaries = append(summaries, ToItemSummary(&items[i]))
	}
	return summaries
}

// ReduceBoxRows folds the flat boxes/box_items/items join result into one
// DTO per box, keeping boxes with no members and preserving row order.
func ReduceBoxRows(rows []dto.BoxItemRow) []dto.BoxGetDTO {
	boxes := make([]dto.BoxGetDTO, 0)
	index := make(map[uint]int)
	for _, row := range rows {
		pos, seen := index[row.BoxID]
		if !seen {
			boxes = append(boxes, dto.BoxGetDTO{
				ID:          row.BoxID,
				UserID:      row.UserID,
				Label:       row.Label,
				Description: row.BoxDescription,
				Category:    row.BoxCategory,
				LocationID:  row.BoxLocationID,
				Items:       make([]dto.ItemSummary, 0),
			})
			pos = len(boxes) - 1
			index[row.BoxID] = pos
		}
		if row.ItemID == nil {
			continue
		}
		summary := dto.ItemSummary{
			ID:         *row.ItemID,
			LocationID: row.ItemLocationID,
		}
		if row.ItemName != nil {
			summary.Name = *row.ItemName
		}
		if row.ItemDescription != nil {
			summary.Description = *row.ItemDescription
		}
		if row.ItemCategory != nil {
			summary.Category = *row.ItemCategory
		}
		if row.Quantity != nil {
			summary.Quantity = *row.Quantity
		}
		if row.ImageURL != nil {
			summary.ImageURL = *row.ImageURL
		}
		boxes[pos].Items = append(boxes[pos].Items, summary)
	}
	return boxes
}
