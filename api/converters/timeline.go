package converters

import (
	"riftview/pkg/database/models"
	"riftview/pkg/stats"
)

const millisecondsPerMinute = 60_000

// PurchasesFromEvents extracts the item purchases of every participant.
// Undo events cancel the latest matching purchase of the same participant.
func PurchasesFromEvents(events []models.ItemEvent) map[int][]stats.ItemPurchase {
	purchases := make(map[int][]stats.ItemPurchase)

	for _, event := range events {
		switch event.EventType {
		case "ITEM_PURCHASED":
			purchases[event.ParticipantId] = append(purchases[event.ParticipantId], stats.ItemPurchase{
				Minute: int(event.Timestamp / millisecondsPerMinute),
				ItemId: event.ItemId,
			})
		case "ITEM_UNDO":
			purchases[event.ParticipantId] = removeLast(purchases[event.ParticipantId], event.ItemId)
		}
	}

	return purchases
}

// GroupTimelines buckets each participant's purchases by minute.
func GroupTimelines(events []models.ItemEvent) map[int][]stats.MinuteGroup {
	purchases := PurchasesFromEvents(events)

	timelines := make(map[int][]stats.MinuteGroup, len(purchases))
	for participantId, list := range purchases {
		timelines[participantId] = stats.GroupPurchases(list)
	}

	return timelines
}

func removeLast(list []stats.ItemPurchase, itemId int) []stats.ItemPurchase {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].ItemId == itemId {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
