package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCacheSetGet(t *testing.T) {
	mc := NewMemCache()
	defer mc.Close()

	mc.Set("key", "value", time.Minute)

	assert.Equal(t, "value", mc.Get("key"))
	assert.Equal(t, "value", mc.GetString("key"))
	assert.Nil(t, mc.Get("missing"))
	assert.Equal(t, "", mc.GetString("missing"))
}

func TestMemCacheExpiry(t *testing.T) {
	mc := NewMemCache()
	defer mc.Close()

	mc.Set("key", "value", -time.Second)

	assert.Nil(t, mc.Get("key"))
}

func TestMemCacheClear(t *testing.T) {
	mc := NewMemCache()
	defer mc.Close()

	mc.Set("a", 1, time.Minute)
	mc.Set("b", 2, time.Minute)
	mc.Clear()

	assert.Nil(t, mc.Get("a"))
	assert.Nil(t, mc.Get("b"))
}

func TestIconKey(t *testing.T) {
	assert.Equal(t, "icon:champion:en_US:103", IconKey("champion", "en_US:103"))
	assert.Equal(t, "icon:item:1055", IconKey("item", 1055))
}
