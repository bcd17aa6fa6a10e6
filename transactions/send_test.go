package transactions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequestEncoding(t *testing.T) {
	out, err := json.Marshal(SendRequest{XDR: "AAAA"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"xdr":"AAAA","launchtube":false}`, string(out))
}

func TestDecodeResult(t *testing.T) {
	t.Run("should decode a swap", func(t *testing.T) {
		r := DecodeResult(json.RawMessage(`{"type":"swap","amountIn":"1000","amountOut":"990","intermediateAmounts":["995"]}`))
		swap, ok := r.(*SwapResult)
		require.True(t, ok, "got %T", r)
		assert.Equal(t, "1000", swap.AmountIn.String())
		assert.Equal(t, "990", swap.AmountOut.String())
		require.Len(t, swap.IntermediateAmounts, 1)
		assert.Equal(t, "995", swap.IntermediateAmounts[0].String())
	})

	t.Run("should decode liquidity variants", func(t *testing.T) {
		add, ok := DecodeResult(json.RawMessage(`{"type":"add_liquidity","amountA":"1","amountB":"2","shares":"3"}`)).(*AddLiquidityResult)
		require.True(t, ok)
		assert.Equal(t, "3", add.Shares.String())

		remove, ok := DecodeResult(json.RawMessage(`{"type":"remove_liquidity","amountA":"4","amountB":"5"}`)).(*RemoveLiquidityResult)
		require.True(t, ok)
		assert.Equal(t, "4", remove.AmountA.String())
		assert.Equal(t, KindRemoveLiquidity, remove.Kind())
	})

	t.Run("should carry the value of the unknown kind", func(t *testing.T) {
		r, ok := DecodeResult(json.RawMessage(`{"type":"unknown","value":{"foo":1}}`)).(*UnknownResult)
		require.True(t, ok)
		assert.Equal(t, KindUnknown, r.Tag)
		assert.JSONEq(t, `{"foo":1}`, string(r.Value))
	})

	t.Run("should degrade unrecognized and malformed payloads", func(t *testing.T) {
		for _, raw := range []string{
			`{"type":"flash_loan","amount":"1"}`,
			`{"type":"swap","amountIn":true}`,
			`{"amountIn":"1"}`,
			`"swap"`,
			`[1,2]`,
		} {
			r, ok := DecodeResult(json.RawMessage(raw)).(*UnknownResult)
			require.True(t, ok, raw)
			assert.JSONEq(t, raw, string(r.Value), raw)
		}
	})

	t.Run("should return nil for a missing result", func(t *testing.T) {
		assert.Nil(t, DecodeResult(nil))
		assert.Nil(t, DecodeResult(json.RawMessage(" null ")))
	})
}

func TestResultEncoding(t *testing.T) {
	t.Run("should tag typed variants", func(t *testing.T) {
		r := DecodeResult(json.RawMessage(`{"type":"add_liquidity","amountA":"1","amountB":"2","shares":"3"}`))
		out, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"add_liquidity","amountA":"1","amountB":"2","shares":"3"}`, string(out))
	})

	t.Run("should wrap unknown payloads", func(t *testing.T) {
		out, err := json.Marshal(&UnknownResult{Tag: "flash_loan", Value: json.RawMessage(`{"a":1}`)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"unknown","value":{"a":1}}`, string(out))
	})
}

func TestSendTransactionResponse(t *testing.T) {
	raw := `{
		"txHash": "abc123",
		"success": true,
		"result": {"type":"swap","amountIn":"1000","amountOut":"990"},
		"ledger": 12345,
		"createdAt": "2024-01-01T00:00:00Z",
		"latestLedger": 12346,
		"latestLedgerCloseTime": "1704067200",
		"feeBump": false,
		"feeCharged": "100",
		"protocol": "aggregator",
		"submissionMethod": "launchtube"
	}`

	t.Run("should decode the full response", func(t *testing.T) {
		var resp SendTransactionResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &resp))

		assert.Equal(t, "abc123", resp.TxHash)
		assert.True(t, resp.Success)
		assert.Equal(t, uint64(12345), resp.Ledger)
		assert.Equal(t, "100", resp.FeeCharged.String())
		assert.Equal(t, ProtocolAggregator, resp.Protocol)
		assert.Equal(t, SubmissionLaunchtube, resp.SubmissionMethod)
		require.NotNil(t, resp.Result)
		assert.Equal(t, KindSwap, resp.Result.Kind())
	})

	t.Run("should survive a re-encode", func(t *testing.T) {
		var first, second SendTransactionResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &first))
		out, err := json.Marshal(&first)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(out, &second))
		assert.Equal(t, first.Result, second.Result)
	})

	t.Run("should accept a null result", func(t *testing.T) {
		var resp SendTransactionResponse
		require.NoError(t, json.Unmarshal([]byte(`{"txHash":"x","success":false,"result":null}`), &resp))
		assert.Nil(t, resp.Result)
	})
}
