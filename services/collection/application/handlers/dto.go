package handlers

import (
	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"series not found"`
} // @name ErrorResponse

// SeriesRequest is the request body for POST /series and PUT /series/{id}.
type SeriesRequest struct {
	Name         string `json:"name"         validate:"required,notblank,max=255" example:"DIMOO 水族館系列"`
	CoverImage   string `json:"coverImage"   validate:"omitempty,max=2048"        example:"https://images.unsplash.com/photo-1513035068991-537c355c3c0d"`
	TotalRegular *int   `json:"totalRegular" validate:"omitempty,gte=0"           example:"12"`
	TotalSecret  *int   `json:"totalSecret"  validate:"omitempty,gte=0"           example:"1"`
} // @name SeriesRequest

// SeriesResponse is a single series.
type SeriesResponse struct {
	ID           string `json:"id"           example:"s1"`
	Name         string `json:"name"         example:"DIMOO 水族館系列"`
	CoverImage   string `json:"coverImage"`
	TotalRegular int    `json:"totalRegular" example:"12"`
	TotalSecret  int    `json:"totalSecret"  example:"1"`
} // @name SeriesResponse

// SeriesProgressResponse is a series with its owned-count progress.
type SeriesProgressResponse struct {
	SeriesResponse
	OwnedCount int     `json:"ownedCount" example:"3"`
	Total      int     `json:"total"      example:"13"`
	Percent    float64 `json:"percent"    example:"23.08"`
	Complete   bool    `json:"complete"   example:"false"`
} // @name SeriesProgressResponse

// DeleteSeriesResponse reports how many items were removed with the series.
type DeleteSeriesResponse struct {
	ID           string `json:"id"           example:"s1"`
	DeletedItems int    `json:"deletedItems" example:"4"`
} // @name DeleteSeriesResponse

// SlotsResponse is the count of missing slots of a series under a view.
// Placeholders holds one entry per missing slot, regular first, and is empty
// when the view is filtered.
type SlotsResponse struct {
	SeriesID     string            `json:"seriesId"     example:"s1"`
	Applicable   bool              `json:"applicable"   example:"true"`
	Regular      int               `json:"regular"      example:"8"`
	Secret       int               `json:"secret"       example:"1"`
	Total        int               `json:"total"        example:"9"`
	Placeholders []SlotPlaceholder `json:"placeholders"`
} // @name SlotsResponse

// SlotPlaceholder is one empty position of a series, rendered as a ghost card.
type SlotPlaceholder struct {
	Kind  string `json:"kind"  example:"regular" enums:"regular,secret"`
	Index int    `json:"index" example:"0"`
} // @name SlotPlaceholder

// ItemRequest is the request body for POST /items and PUT /items/{id}.
type ItemRequest struct {
	Name        string   `json:"name"        validate:"required,notblank,max=255"                      example:"北極熊潛水員"`
	SeriesID    string   `json:"seriesId"    validate:"required,notblank"                              example:"s1"`
	Description string   `json:"description" validate:"max=2000"                                       example:"頭上戴著北極熊帽子的潛水員。"`
	ImageURL    string   `json:"imageUrl"`
	Price       float64  `json:"price"       validate:"gte=0"                                          example:"3500"`
	Notes       string   `json:"notes"       validate:"max=2000"`
	Status      string   `json:"status"      validate:"omitempty,oneof=displayed stored not_owned"    example:"displayed"`
	Tags        []string `json:"tags"        validate:"max=50,dive,max=64"                             example:"熱門"`
} // @name ItemRequest

// ItemResponse is a single item.
type ItemResponse struct {
	ID           string   `json:"id"           example:"0b6f6c9e-3c57-4d8e-9a51-0f6f3bd1c2a4"`
	Name         string   `json:"name"         example:"北極熊潛水員"`
	SeriesID     string   `json:"seriesId"     example:"s1"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	DateAcquired string   `json:"dateAcquired" example:"2024-05-01T12:00:00.000Z"`
	Price        float64  `json:"price"        example:"3500"`
	Notes        string   `json:"notes"`
	Status       string   `json:"status"       example:"displayed"`
	StatusLabel  string   `json:"statusLabel"  example:"展示中"`
	Tags         []string `json:"tags"`
	Secret       bool     `json:"secret"       example:"false"`
} // @name ItemResponse

// ItemListResponse is the result of a view query over items.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Count      int            `json:"count"      example:"10"`
	GhostSlots *SlotsResponse `json:"ghostSlots,omitempty"`
} // @name ItemListResponse

// StatsResponse is the collection-wide summary.
type StatsResponse struct {
	OwnedCount    int     `json:"ownedCount"    example:"8"`
	NotOwnedCount int     `json:"notOwnedCount" example:"2"`
	TotalCount    int     `json:"totalCount"    example:"10"`
	TotalValue    float64 `json:"totalValue"    example:"9610"`
	Level         int     `json:"level"         example:"2"`
	Progress      int     `json:"progress"      example:"60"`
	NextLevelAt   int     `json:"nextLevelAt"   example:"10"`
} // @name StatsResponse

// ResetRequest is the request body for POST /reset.
type ResetRequest struct {
	Confirm bool `json:"confirm" example:"true"`
} // @name ResetRequest

// ResetResponse reports the size of the restored collection.
type ResetResponse struct {
	Series int `json:"series" example:"5"`
	Items  int `json:"items"  example:"10"`
} // @name ResetResponse

// ClassifyRequest is the request body for POST /classify.
type ClassifyRequest struct {
	Image string `json:"image" validate:"required" example:"data:image/jpeg;base64,/9j/4AAQSkZJRg..."`
} // @name ClassifyRequest

// ClassifyResponse is the classifier's identification of the photographed figure.
type ClassifyResponse struct {
	Name        string  `json:"name"        example:"北極熊潛水員"`
	Series      string  `json:"series"      example:"DIMOO 水族館系列"`
	Rarity      string  `json:"rarity"      example:"Rare" enums:"Common,Rare,Secret,Super Secret"`
	Description string  `json:"description" example:"戴著北極熊帽子的小潛水員。"`
	Confidence  float64 `json:"confidence"  example:"0.82"`
} // @name ClassifyResponse

func toSeriesResponse(s models.Series) SeriesResponse {
	return SeriesResponse{
		ID:           s.ID,
		Name:         s.Name,
		CoverImage:   s.CoverImage,
		TotalRegular: s.TotalRegular,
		TotalSecret:  s.TotalSecret,
	}
}

func toItemResponse(it models.Item) ItemResponse {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	status := it.EffectiveStatus()
	return ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		SeriesID:     it.SeriesID,
		Description:  it.Description,
		ImageURL:     it.ImageURL,
		DateAcquired: it.DateAcquired,
		Price:        it.Price,
		Notes:        it.Notes,
		Status:       string(status),
		StatusLabel:  status.Label(),
		Tags:         tags,
		Secret:       it.IsSecret(),
	}
}

func toSlotsResponse(seriesID string, s models.Slots, applicable bool) SlotsResponse {
	placeholders := make([]SlotPlaceholder, 0, s.Total())
	if applicable {
		for i := range s.Regular {
			placeholders = append(placeholders, SlotPlaceholder{Kind: "regular", Index: i})
		}
		for i := range s.Secret {
			placeholders = append(placeholders, SlotPlaceholder{Kind: "secret", Index: i})
		}
	}
	return SlotsResponse{
		SeriesID:     seriesID,
		Applicable:   applicable,
		Regular:      s.Regular,
		Secret:       s.Secret,
		Total:        s.Total(),
		Placeholders: placeholders,
	}
}

func (r ItemRequest) fields() models.ItemFields {
	return models.ItemFields{
		Name:        r.Name,
		SeriesID:    r.SeriesID,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Price:       r.Price,
		Notes:       r.Notes,
		Status:      models.Status(r.Status),
		Tags:        r.Tags,
	}
}
