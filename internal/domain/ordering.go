package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// CompareItems is the display-order comparison of two items of the same
// itinerary. Keys are applied as successive tie-breaks:
//
//  1. date, only when both items have one;
//  2. time of day, only when both items have one;
//  3. order index.
//
// An item with a date is not placed before or after an undated item by
// the date key alone; the comparison falls through to the next key.
func CompareItems(a, b Item) int {
	if a.Date != nil && b.Date != nil {
		if c := a.Date.Compare(*b.Date); c != 0 {
			return c
		}
	}
	if a.Time != nil && b.Time != nil {
		if c := strings.Compare(*a.Time, *b.Time); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.OrderIndex, b.OrderIndex)
}

// OrderItems returns the items in display order without modifying the
// input. The sort is stable: items equal on every key keep their input
// order. The result depends only on the input sequence.
func OrderItems(items []Item) []Item {
	out := slices.Clone(items)
	if out == nil {
		return []Item{}
	}
	slices.SortStableFunc(out, CompareItems)
	return out
}

// DayPlan is a run of consecutive ordered items sharing the same date.
// Undated items are grouped with Date == nil.
type DayPlan struct {
	Date  *time.Time
	Items []Item
}

// GroupByDay splits already-ordered items into consecutive day groups.
// The input order is preserved; a date seen again later starts a new group.
func GroupByDay(ordered []Item) []DayPlan {
	days := make([]DayPlan, 0)
	for _, item := range ordered {
		if n := len(days); n > 0 && sameDay(days[n-1].Date, item.Date) {
			days[n-1].Items = append(days[n-1].Items, item)
			continue
		}
		days = append(days, DayPlan{Date: item.Date, Items: []Item{item}})
	}
	return days
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
