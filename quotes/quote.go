package quotes

import (
	"encoding/json"

	"github.com/defistate/soroswap-client-go/amount"
	"github.com/defistate/soroswap-client-go/assetlist"
	"github.com/defistate/soroswap-client-go/pools"
)

// TradeType fixes which side of the trade the amount refers to.
type TradeType string

const (
	ExactIn  TradeType = "EXACT_IN"
	ExactOut TradeType = "EXACT_OUT"
)

// Platform is the router engine that produced a quote.
type Platform string

const (
	PlatformRouter     Platform = "router"
	PlatformAggregator Platform = "aggregator"
	PlatformSDEX       Platform = "sdex"
)

// GaslessTrustline asks the service to sponsor a missing trustline for the output asset.
type GaslessTrustline string

const GaslessTrustlineCreate GaslessTrustline = "create"

type QuoteRequest struct {
	AssetIn          string             `json:"assetIn"`
	AssetOut         string             `json:"assetOut"`
	Amount           amount.Amount      `json:"amount"`
	TradeType        TradeType          `json:"tradeType"`
	Protocols        []pools.Protocol   `json:"protocols,omitempty"`
	Parts            *int               `json:"parts,omitempty"`
	SlippageBps      *int               `json:"slippageBps,omitempty"`
	MaxHops          *int               `json:"maxHops,omitempty"`
	AssetList        []assetlist.Source `json:"assetList,omitempty"`
	FeeBps           *int               `json:"feeBps,omitempty"`
	GaslessTrustline GaslessTrustline   `json:"gaslessTrustline,omitempty"`
}

// UnmarshalJSON decodes asset lists as known Lists where the name or URL matches
// one and as Custom otherwise.
func (r *QuoteRequest) UnmarshalJSON(data []byte) error {
	type plain QuoteRequest
	aux := struct {
		*plain
		AssetList []string `json:"assetList,omitempty"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.AssetList = nil
	for _, name := range aux.AssetList {
		if l, ok := assetlist.Lookup(name); ok {
			r.AssetList = append(r.AssetList, l)
			continue
		}
		r.AssetList = append(r.AssetList, assetlist.Custom(name))
	}
	return nil
}

// RoutePlan is one hop sequence of the chosen route.
type RoutePlan struct {
	Protocol   pools.Protocol `json:"protocol"`
	Path       []string       `json:"path"`
	Percentage string         `json:"percentage"`
}

type QuoteResponse struct {
	AssetIn              string        `json:"assetIn"`
	AmountIn             amount.Amount `json:"amountIn"`
	AssetOut             string        `json:"assetOut"`
	AmountOut            amount.Amount `json:"amountOut"`
	OtherAmountThreshold amount.Amount `json:"otherAmountThreshold"`
	PriceImpactPct       string        `json:"priceImpactPct"`
	Platform             Platform      `json:"platform"`
	RoutePlan            []RoutePlan   `json:"routePlan"`
	TradeType            TradeType     `json:"tradeType"`

	// RawTrade is shaped by whichever engine served the quote and is kept verbatim so
	// that Build can hand it back unchanged.
	RawTrade json.RawMessage `json:"rawTrade,omitempty"`
}

// Protocols lists the distinct protocols the route passes through, in route order.
func (q *QuoteResponse) Protocols() []pools.Protocol {
	seen := make(map[pools.Protocol]struct{}, len(q.RoutePlan))
	var out []pools.Protocol
	for _, hop := range q.RoutePlan {
		if _, ok := seen[hop.Protocol]; ok {
			continue
		}
		seen[hop.Protocol] = struct{}{}
		out = append(out, hop.Protocol)
	}
	return out
}
