package transactions

import (
	"bytes"
	"encoding/json"

	"github.com/defistate/soroswap-client-go/amount"
)

// ResultKind is the discriminator carried in the "type" field of a result.
type ResultKind string

const (
	KindSwap            ResultKind = "swap"
	KindAddLiquidity    ResultKind = "add_liquidity"
	KindRemoveLiquidity ResultKind = "remove_liquidity"
	KindUnknown         ResultKind = "unknown"
)

// Result is the outcome of a submitted transaction. The concrete type is one of
// *SwapResult, *AddLiquidityResult, *RemoveLiquidityResult or *UnknownResult.
type Result interface {
	Kind() ResultKind
	isResult()
}

type SwapResult struct {
	AmountIn            amount.Amount   `json:"amountIn"`
	AmountOut           amount.Amount   `json:"amountOut"`
	IntermediateAmounts []amount.Amount `json:"intermediateAmounts,omitempty"`
}

type AddLiquidityResult struct {
	AmountA amount.Amount `json:"amountA"`
	AmountB amount.Amount `json:"amountB"`
	Shares  amount.Amount `json:"shares"`
}

type RemoveLiquidityResult struct {
	AmountA amount.Amount `json:"amountA"`
	AmountB amount.Amount `json:"amountB"`
}

// UnknownResult holds anything the typed variants do not cover: the service's own
// "unknown" kind, kinds this package does not know yet, and known kinds whose payload
// did not match the expected shape.
type UnknownResult struct {
	// Tag is the "type" value as received, possibly empty.
	Tag ResultKind
	// Value is the "value" field for the service's "unknown" kind and the whole
	// result object otherwise.
	Value json.RawMessage
}

func (*SwapResult) Kind() ResultKind            { return KindSwap }
func (*AddLiquidityResult) Kind() ResultKind    { return KindAddLiquidity }
func (*RemoveLiquidityResult) Kind() ResultKind { return KindRemoveLiquidity }
func (*UnknownResult) Kind() ResultKind         { return KindUnknown }

func (*SwapResult) isResult()            {}
func (*AddLiquidityResult) isResult()    {}
func (*RemoveLiquidityResult) isResult() {}
func (*UnknownResult) isResult()         {}

// DecodeResult picks the variant for raw. It never fails: payloads that cannot be
// decoded into their declared variant degrade to *UnknownResult. A missing or null
// payload yields nil.
func DecodeResult(raw json.RawMessage) Result {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var head struct {
		Type  ResultKind      `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return &UnknownResult{Value: raw}
	}

	var typed Result
	switch head.Type {
	case KindSwap:
		typed = &SwapResult{}
	case KindAddLiquidity:
		typed = &AddLiquidityResult{}
	case KindRemoveLiquidity:
		typed = &RemoveLiquidityResult{}
	case KindUnknown:
		return &UnknownResult{Tag: KindUnknown, Value: head.Value}
	default:
		return &UnknownResult{Tag: head.Type, Value: raw}
	}

	if err := json.Unmarshal(raw, typed); err != nil {
		return &UnknownResult{Tag: head.Type, Value: raw}
	}
	return typed
}

func (r *SwapResult) MarshalJSON() ([]byte, error) {
	type plain SwapResult
	return json.Marshal(struct {
		Type ResultKind `json:"type"`
		*plain
	}{KindSwap, (*plain)(r)})
}

func (r *AddLiquidityResult) MarshalJSON() ([]byte, error) {
	type plain AddLiquidityResult
	return json.Marshal(struct {
		Type ResultKind `json:"type"`
		*plain
	}{KindAddLiquidity, (*plain)(r)})
}

func (r *RemoveLiquidityResult) MarshalJSON() ([]byte, error) {
	type plain RemoveLiquidityResult
	return json.Marshal(struct {
		Type ResultKind `json:"type"`
		*plain
	}{KindRemoveLiquidity, (*plain)(r)})
}

// MarshalJSON re-emits the payload in the service's "unknown" envelope.
func (r *UnknownResult) MarshalJSON() ([]byte, error) {
	value := r.Value
	if len(value) == 0 {
		value = json.RawMessage("null")
	}
	return json.Marshal(struct {
		Type  ResultKind      `json:"type"`
		Value json.RawMessage `json:"value"`
	}{KindUnknown, value})
}
