package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEncode(t *testing.T) {
	t.Run("should keep insertion order and repeat keys", func(t *testing.T) {
		q := NewQuery().
			Set("network", "mainnet").
			Add("protocol", "soroswap", "aqua").
			Add("assetList", "soroswap")

		assert.Equal(t, "network=mainnet&protocol=soroswap&protocol=aqua&assetList=soroswap", q.Encode())
	})

	t.Run("should not deduplicate values", func(t *testing.T) {
		q := NewQuery().Add("asset", "A", "B", "A")
		assert.Equal(t, "asset=A&asset=B&asset=A", q.Encode())
	})

	t.Run("should omit keys added without values", func(t *testing.T) {
		q := NewQuery().Set("network", "testnet").Add("protocol")
		assert.Equal(t, "network=testnet", q.Encode())
		assert.Equal(t, 1, q.Len())
	})

	t.Run("should keep the position of a replaced key", func(t *testing.T) {
		q := NewQuery().Set("a", "1").Set("b", "2").Set("a", "3")
		assert.Equal(t, "a=3&b=2", q.Encode())
	})

	t.Run("should append to an existing key in place", func(t *testing.T) {
		q := NewQuery().Add("x", "1").Set("y", "2").Add("x", "3")
		assert.Equal(t, "x=1&x=3&y=2", q.Encode())
		assert.Equal(t, []string{"1", "3"}, q.Get("x"))
	})

	t.Run("should escape keys and values", func(t *testing.T) {
		q := NewQuery().Add("assetList", "https://example.com/list.json?a=1&b=2")
		assert.Equal(t, "assetList=https%3A%2F%2Fexample.com%2Flist.json%3Fa%3D1%26b%3D2", q.Encode())
	})
}

func TestBuildURLWithQuery(t *testing.T) {
	t.Run("should return the bare path for an empty query", func(t *testing.T) {
		assert.Equal(t, "/asset-list", BuildURLWithQuery("/asset-list", nil))
		assert.Equal(t, "/asset-list", BuildURLWithQuery("/asset-list", NewQuery()))
	})

	t.Run("should join with a question mark", func(t *testing.T) {
		assert.Equal(t, "/protocols?network=testnet", BuildURLWithQuery("/protocols", NewQuery().Set("network", "testnet")))
	})

	t.Run("should extend an existing query", func(t *testing.T) {
		assert.Equal(t, "/x?a=1&b=2", BuildURLWithQuery("/x?a=1", NewQuery().Set("b", "2")))
	})
}
