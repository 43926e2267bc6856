package api

import (
	"github.com/phrazzld/study-tracker/internal/domain"
)

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	Title string `json:"title" validate:"required"`
}

// DeleteItemsRequest is the body of DELETE /api/items. Positions refer to
// the list the client last rendered.
type DeleteItemsRequest struct {
	Positions []int `json:"positions" validate:"required,min=1,dive,gte=0"`
}

// StudyItemResponse represents a study item on the wire.
type StudyItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Repetitions int    `json:"repetitions"`
}

// ItemListResponse is the full rendered list plus the collection version it
// was taken at.
type ItemListResponse struct {
	Version uint64              `json:"version"`
	Items   []StudyItemResponse `json:"items"`
}

// ExportResponse describes a completed export.
type ExportResponse struct {
	Path        string `json:"path"`
	ItemCount   int    `json:"item_count"`
	DownloadURL string `json:"download_url"`
}

func itemToResponse(item domain.StudyItem) StudyItemResponse {
	return StudyItemResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Repetitions: item.Repetitions,
	}
}

func listToResponse(items []domain.StudyItem, version uint64) ItemListResponse {
	out := make([]StudyItemResponse, len(items))
	for i, item := range items {
		out[i] = itemToResponse(item)
	}
	return ItemListResponse{Version: version, Items: out}
}
