package pools

import (
	"github.com/defistate/soroswap-client-go/amount"
)

// Protocol tags the exchange protocol a pool or route hop belongs to.
type Protocol string

const (
	Soroswap Protocol = "soroswap"
	Phoenix  Protocol = "phoenix"
	Aqua     Protocol = "aqua"
	SDEX     Protocol = "sdex"
)

// Pool is a liquidity venue snapshot. Stableswap pools may carry a third asset and
// the amplification parameters; plain constant-product pools leave them unset.
type Pool struct {
	Protocol     Protocol       `json:"protocol"`
	Address      string         `json:"address"`
	TokenA       string         `json:"tokenA"`
	TokenB       string         `json:"tokenB"`
	ReserveA     amount.Amount  `json:"reserveA"`
	ReserveB     amount.Amount  `json:"reserveB"`
	Ledger       *uint64        `json:"ledger,omitempty"`
	ReserveLp    *amount.Amount `json:"reserveLp,omitempty"`
	StakeAddress string         `json:"stakeAddress,omitempty"`
	PoolType     string         `json:"poolType,omitempty"`
	Fee          *amount.Amount `json:"fee,omitempty"`
	TotalFeeBps  *int           `json:"totalFeeBps,omitempty"`

	TokenC        string         `json:"tokenC,omitempty"`
	ReserveC      *amount.Amount `json:"reserveC,omitempty"`
	FutureA       *amount.Amount `json:"futureA,omitempty"`
	FutureATime   *amount.Amount `json:"futureATime,omitempty"`
	InitialA      *amount.Amount `json:"initialA,omitempty"`
	InitialATime  *amount.Amount `json:"initialATime,omitempty"`
	PrecisionMulA *amount.Amount `json:"precisionMulA,omitempty"`
	PrecisionMulB *amount.Amount `json:"precisionMulB,omitempty"`
	PrecisionMulC *amount.Amount `json:"precisionMulC,omitempty"`
	PoolHash      string         `json:"poolHash,omitempty"`
}

// InvolvesAsset reports whether asset is one of the pool's constituents.
func (p *Pool) InvolvesAsset(asset string) bool {
	if asset == "" {
		return false
	}
	return p.TokenA == asset || p.TokenB == asset || p.TokenC == asset
}

// Assets returns the pool's constituents in order, two or three of them.
func (p *Pool) Assets() []string {
	assets := []string{p.TokenA, p.TokenB}
	if p.TokenC != "" {
		assets = append(assets, p.TokenC)
	}
	return assets
}
