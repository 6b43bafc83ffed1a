package domain

// ItineraryStatus is the lifecycle state of a travel plan.
type ItineraryStatus string

const (
	ItineraryStatusDraft     ItineraryStatus = "draft"
	ItineraryStatusActive    ItineraryStatus = "active"
	ItineraryStatusCompleted ItineraryStatus = "completed"
	ItineraryStatusCancelled ItineraryStatus = "cancelled"
)

func (s ItineraryStatus) String() string { return string(s) }

func (s ItineraryStatus) IsValid() bool {
	switch s {
	case ItineraryStatusDraft, ItineraryStatusActive, ItineraryStatusCompleted, ItineraryStatusCancelled:
		return true
	}
	return false
}

// ItemType identifies what kind of planned thing an item is.
type ItemType string

const (
	ItemTypeEvent    ItemType = "event"
	ItemTypeHotel    ItemType = "hotel"
	ItemTypeFlight   ItemType = "flight"
	ItemTypeActivity ItemType = "activity"
	ItemTypeNote     ItemType = "note"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeEvent, ItemTypeHotel, ItemTypeFlight, ItemTypeActivity, ItemTypeNote:
		return true
	}
	return false
}

// IsSearchResult reports whether items of this type originate from a
// provider search feature (event, hotel or flight search).
func (t ItemType) IsSearchResult() bool {
	switch t {
	case ItemTypeEvent, ItemTypeHotel, ItemTypeFlight:
		return true
	}
	return false
}

// ItemStatusPlanned is the status every item starts with.
const ItemStatusPlanned = "planned"
