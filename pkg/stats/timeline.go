package stats

import "sort"

// ItemPurchase is a single purchase event of one participant.
type ItemPurchase struct {
	Minute int
	ItemId int
}

// ItemCount is a purchased item with the amount bought in the same minute.
type ItemCount struct {
	ItemId int `json:"itemId"`
	Count  int `json:"count"`
}

// MinuteGroup is every purchase of a given minute.
type MinuteGroup struct {
	Minute int         `json:"minute"`
	Items  []ItemCount `json:"items"`
}

// GroupPurchases buckets purchases by minute and collapses repeated
// purchases of the same item into a single counted entry.
// Groups come out ordered by minute and items by id, so the result is
// independent of the input order.
func GroupPurchases(purchases []ItemPurchase) []MinuteGroup {
	byMinute := make(map[int]map[int]int)

	for _, purchase := range purchases {
		if byMinute[purchase.Minute] == nil {
			byMinute[purchase.Minute] = make(map[int]int)
		}
		byMinute[purchase.Minute][purchase.ItemId]++
	}

	minutes := make([]int, 0, len(byMinute))
	for minute := range byMinute {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)

	groups := make([]MinuteGroup, 0, len(minutes))
	for _, minute := range minutes {
		counts := byMinute[minute]

		items := make([]ItemCount, 0, len(counts))
		for itemId, count := range counts {
			items = append(items, ItemCount{ItemId: itemId, Count: count})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].ItemId < items[j].ItemId })

		groups = append(groups, MinuteGroup{Minute: minute, Items: items})
	}

	return groups
}
