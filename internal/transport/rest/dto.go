package rest

import (
	"time"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

type itineraryResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Destination *string        `json:"destination"`
	StartDate   *string        `json:"start_date"`
	EndDate     *string        `json:"end_date"`
	Budget      *float64       `json:"budget"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Items       []itemResponse `json:"items"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	ItineraryID string    `json:"itinerary_id"`
	ItemType    string    `json:"item_type"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	URL         *string   `json:"url"`
	ImageURL    *string   `json:"image_url"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Price       *float64  `json:"price"`
	Status      string    `json:"status"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

type dayResponse struct {
	Date  *string        `json:"date"`
	Items []itemResponse `json:"items"`
}

func toItineraryResponse(it *domain.Itinerary) itineraryResponse {
	return itineraryResponse{
		ID:          it.ID.String(),
		UserID:      it.UserID.String(),
		Title:       it.Title,
		Description: it.Description,
		Destination: it.Destination,
		StartDate:   formatDatePtr(it.StartDate),
		EndDate:     formatDatePtr(it.EndDate),
		Budget:      it.Budget,
		Status:      it.Status.String(),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
		Items:       toItemResponses(it.Items),
	}
}

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID.String(),
		ItineraryID: item.ItineraryID.String(),
		ItemType:    item.ItemType.String(),
		Title:       item.Title,
		Description: item.Description,
		Location:    item.Location,
		URL:         item.URL,
		ImageURL:    item.ImageURL,
		Date:        formatDatePtr(item.Date),
		Time:        item.Time,
		Price:       item.Price,
		Status:      item.Status,
		OrderIndex:  item.OrderIndex,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out
}

func toDayResponses(days []domain.DayPlan) []dayResponse {
	out := make([]dayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, dayResponse{Date: formatDatePtr(d.Date), Items: toItemResponses(d.Items)})
	}
	return out
}

func formatDatePtr(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := domain.FormatDate(*d)
	return &s
}
