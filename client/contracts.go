package client

import (
	"context"
	"net/url"

	"github.com/defistate/soroswap-client-go/networks"
	"github.com/defistate/soroswap-client-go/pools"
	"github.com/defistate/soroswap-client-go/transport"
)

// ContractRole names one of the deployed Soroswap contracts.
type ContractRole string

const (
	RoleFactory    ContractRole = "factory"
	RoleRouter     ContractRole = "router"
	RoleAggregator ContractRole = "aggregator"
)

var ContractRoles = []ContractRole{RoleFactory, RoleRouter, RoleAggregator}

type ContractAddress struct {
	Address string `json:"address"`
}

// GetContractAddress looks up the address of a deployed contract. The network is
// part of the path rather than the query.
func (c *Client) GetContractAddress(ctx context.Context, network networks.Network, role ContractRole) (*ContractAddress, error) {
	path := "/api/" + url.PathEscape(c.resolve(network).String()) + "/" + url.PathEscape(string(role))

	var out ContractAddress
	if err := c.transport.Get(transport.WithRoute(ctx, "/api/{network}/{role}"), path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProtocols lists the protocols the service can route through.
func (c *Client) GetProtocols(ctx context.Context, network networks.Network) ([]pools.Protocol, error) {
	path := transport.BuildURLWithQuery("/protocols", c.networkQuery(network))

	var out []pools.Protocol
	if err := c.transport.Get(transport.WithRoute(ctx, "/protocols"), path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
