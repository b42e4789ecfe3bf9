package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupPurchases(t *testing.T) {
	purchases := []ItemPurchase{
		{Minute: 2, ItemId: 1055},
		{Minute: 0, ItemId: 1054},
		{Minute: 0, ItemId: 2003},
		{Minute: 0, ItemId: 2003},
		{Minute: 14, ItemId: 3071},
	}

	groups := GroupPurchases(purchases)

	assert.Len(t, groups, 3)

	assert.Equal(t, 0, groups[0].Minute)
	assert.Equal(t, []ItemCount{{ItemId: 1054, Count: 1}, {ItemId: 2003, Count: 2}}, groups[0].Items)

	assert.Equal(t, 2, groups[1].Minute)
	assert.Equal(t, []ItemCount{{ItemId: 1055, Count: 1}}, groups[1].Items)

	assert.Equal(t, 14, groups[2].Minute)
	assert.Equal(t, []ItemCount{{ItemId: 3071, Count: 1}}, groups[2].Items)
}

// The grouping must not depend on the order the events arrive in.
func TestGroupPurchasesOrderIndependent(t *testing.T) {
	forward := []ItemPurchase{
		{Minute: 1, ItemId: 1001},
		{Minute: 1, ItemId: 1001},
		{Minute: 3, ItemId: 3006},
		{Minute: 5, ItemId: 1042},
	}

	reversed := []ItemPurchase{
		{Minute: 5, ItemId: 1042},
		{Minute: 3, ItemId: 3006},
		{Minute: 1, ItemId: 1001},
		{Minute: 1, ItemId: 1001},
	}

	assert.Equal(t, GroupPurchases(forward), GroupPurchases(reversed))
}

func TestGroupPurchasesEmpty(t *testing.T) {
	assert.Empty(t, GroupPurchases(nil))
	assert.Empty(t, GroupPurchases([]ItemPurchase{}))
}
