package client

import (
	"context"
	"net/url"

	"github.com/defistate/soroswap-client-go/assetlist"
	"github.com/defistate/soroswap-client-go/networks"
	"github.com/defistate/soroswap-client-go/pools"
	"github.com/defistate/soroswap-client-go/transport"
)

func protocolNames(protocols []pools.Protocol) []string {
	out := make([]string, len(protocols))
	for i, p := range protocols {
		out[i] = string(p)
	}
	return out
}

// GetPools lists pools of the given protocols, optionally restricted to pools whose
// assets appear in one of assetLists.
func (c *Client) GetPools(ctx context.Context, network networks.Network, protocols []pools.Protocol, assetLists []assetlist.Source) ([]pools.Pool, error) {
	q := c.networkQuery(network).
		Add("protocol", protocolNames(protocols)...).
		Add("assetList", assetlist.Normalize(assetLists)...)

	var out []pools.Pool
	if err := c.transport.Get(transport.WithRoute(ctx, "/pools"), transport.BuildURLWithQuery("/pools", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPoolByTokens lists the pools trading assetA against assetB.
func (c *Client) GetPoolByTokens(ctx context.Context, assetA, assetB string, network networks.Network, protocols []pools.Protocol) ([]pools.Pool, error) {
	q := c.networkQuery(network).Add("protocol", protocolNames(protocols)...)
	path := transport.BuildURLWithQuery("/pools/"+url.PathEscape(assetA)+"/"+url.PathEscape(assetB), q)

	var out []pools.Pool
	if err := c.transport.Get(transport.WithRoute(ctx, "/pools/{assetA}/{assetB}"), path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddLiquidity builds a transaction depositing into a pool, creating it if needed.
func (c *Client) AddLiquidity(ctx context.Context, req pools.AddLiquidityRequest, network networks.Network) (*pools.LiquidityResponse, error) {
	return c.liquidity(ctx, "/liquidity/add", req, network)
}

// RemoveLiquidity builds a transaction burning pool shares.
func (c *Client) RemoveLiquidity(ctx context.Context, req pools.RemoveLiquidityRequest, network networks.Network) (*pools.LiquidityResponse, error) {
	return c.liquidity(ctx, "/liquidity/remove", req, network)
}

func (c *Client) liquidity(ctx context.Context, route string, body any, network networks.Network) (*pools.LiquidityResponse, error) {
	path := transport.BuildURLWithQuery(route, c.networkQuery(network))

	var out pools.LiquidityResponse
	if err := c.transport.Post(transport.WithRoute(ctx, route), path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserPositions lists the liquidity positions held by address.
func (c *Client) GetUserPositions(ctx context.Context, address string, network networks.Network) ([]pools.UserPositionResponse, error) {
	path := transport.BuildURLWithQuery("/liquidity/positions/"+url.PathEscape(address), c.networkQuery(network))

	var out []pools.UserPositionResponse
	if err := c.transport.Get(transport.WithRoute(ctx, "/liquidity/positions/{address}"), path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
