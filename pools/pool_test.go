package pools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(tokens ...string) Pool {
	p := Pool{Protocol: Soroswap, Address: "POOL_ADDRESS_123"}
	p.TokenA, p.TokenB = tokens[0], tokens[1]
	if len(tokens) > 2 {
		p.TokenC = tokens[2]
	}
	return p
}

func TestInvolvesAsset(t *testing.T) {
	t.Run("should match either side of a two-asset pool", func(t *testing.T) {
		p := newTestPool("TOKEN_A", "TOKEN_B")
		assert.True(t, p.InvolvesAsset("TOKEN_A"))
		assert.True(t, p.InvolvesAsset("TOKEN_B"))
		assert.False(t, p.InvolvesAsset("TOKEN_C"))
	})

	t.Run("should match the third asset of a stableswap pool", func(t *testing.T) {
		p := newTestPool("TOKEN_A", "TOKEN_B", "TOKEN_C")
		assert.True(t, p.InvolvesAsset("TOKEN_C"))
		assert.Equal(t, []string{"TOKEN_A", "TOKEN_B", "TOKEN_C"}, p.Assets())
	})

	t.Run("should never match the empty asset", func(t *testing.T) {
		p := newTestPool("TOKEN_A", "TOKEN_B")
		assert.False(t, p.InvolvesAsset(""))
		assert.Len(t, p.Assets(), 2)
	})
}

func TestPoolDecoding(t *testing.T) {
	raw := `{
		"protocol": "aqua",
		"address": "CPOOL",
		"tokenA": "CA",
		"tokenB": "CB",
		"tokenC": "CC",
		"reserveA": "340282366920938463463374607431768211455",
		"reserveB": 2000000,
		"reserveC": "3",
		"ledger": 12345,
		"fee": "30",
		"futureA": "85000"
	}`

	var p Pool
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, Aqua, p.Protocol)
	assert.Equal(t, "340282366920938463463374607431768211455", p.ReserveA.String())
	assert.Equal(t, "2000000", p.ReserveB.String())
	require.NotNil(t, p.Ledger)
	assert.Equal(t, uint64(12345), *p.Ledger)
	require.NotNil(t, p.FutureA)
	assert.Equal(t, "85000", p.FutureA.String())
	assert.Nil(t, p.InitialA)
	assert.True(t, p.InvolvesAsset("CC"))
}
