package pools

import (
	"github.com/defistate/soroswap-client-go/amount"
	"github.com/defistate/soroswap-client-go/assetlist"
)

// LiquidityAction classifies the transaction a liquidity request produced.
type LiquidityAction string

const (
	CreatePool      LiquidityAction = "create_pool"
	AddLiquidity    LiquidityAction = "add_liquidity"
	RemoveLiquidity LiquidityAction = "remove_liquidity"
)

type AddLiquidityRequest struct {
	AssetA      string        `json:"assetA"`
	AssetB      string        `json:"assetB"`
	AmountA     amount.Amount `json:"amountA"`
	AmountB     amount.Amount `json:"amountB"`
	To          string        `json:"to"`
	SlippageBps string        `json:"slippageBps,omitempty"` // basis points, e.g. "50" for 0.5%
}

type RemoveLiquidityRequest struct {
	AssetA      string        `json:"assetA"`
	AssetB      string        `json:"assetB"`
	Liquidity   amount.Amount `json:"liquidity"`
	AmountA     amount.Amount `json:"amountA"`
	AmountB     amount.Amount `json:"amountB"`
	To          string        `json:"to"`
	SlippageBps string        `json:"slippageBps,omitempty"`
}

// LiquidityResponse carries the unsigned transaction for an add or remove request.
type LiquidityResponse struct {
	XDR        string          `json:"xdr"`
	Type       LiquidityAction `json:"type"`
	PoolInfo   Pool            `json:"poolInfo"`
	MinAmountA amount.Amount   `json:"minAmountA"`
	MinAmountB amount.Amount   `json:"minAmountB"`
}

type PoolInformation struct {
	Protocol    Protocol                  `json:"protocol"`
	Address     string                    `json:"address"`
	TokenA      assetlist.AssetNameSymbol `json:"tokenA"`
	TokenB      assetlist.AssetNameSymbol `json:"tokenB"`
	ReserveA    amount.Amount             `json:"reserveA"`
	ReserveB    amount.Amount             `json:"reserveB"`
	TotalSupply amount.Amount             `json:"totalSupply"`
	Ledger      uint64                    `json:"ledger"`
}

// UserPositionResponse is a wallet's share of one pool.
type UserPositionResponse struct {
	PoolInformation        PoolInformation `json:"poolInformation"`
	UserPosition           amount.Amount   `json:"userPosition"`
	UserShares             float64         `json:"userShares"`
	TokenAAmountEquivalent amount.Amount   `json:"tokenAAmountEquivalent"`
	TokenBAmountEquivalent amount.Amount   `json:"tokenBAmountEquivalent"`
}
