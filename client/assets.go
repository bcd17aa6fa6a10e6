package client

import (
	"context"
	"errors"

	"github.com/defistate/soroswap-client-go/assetlist"
	"github.com/defistate/soroswap-client-go/networks"
	"github.com/defistate/soroswap-client-go/prices"
	"github.com/defistate/soroswap-client-go/transport"
)

// GetAssetLists returns the asset lists the service knows about. The asset-list
// endpoints are not scoped to a network.
func (c *Client) GetAssetLists(ctx context.Context) ([]assetlist.AssetListInfo, error) {
	var out []assetlist.AssetListInfo
	if err := c.transport.Get(transport.WithRoute(ctx, "/asset-list"), "/asset-list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ErrNoAssetList is returned by GetAssetListByName when no list is named. Use
// GetAssetLists to fetch the index.
var ErrNoAssetList = errors.New("asset list is required")

// GetAssetListByName returns the contents of one asset list.
func (c *Client) GetAssetListByName(ctx context.Context, list assetlist.Source) (*assetlist.AssetList, error) {
	if list == nil {
		return nil, ErrNoAssetList
	}
	q := transport.NewQuery().Set("name", list.AssetListName())

	var out assetlist.AssetList
	if err := c.transport.Get(transport.WithRoute(ctx, "/asset-list"), transport.BuildURLWithQuery("/asset-list", q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPrice returns the latest price of each asset.
func (c *Client) GetPrice(ctx context.Context, assets prices.Assets, network networks.Network) ([]prices.PriceData, error) {
	q := c.networkQuery(network).Add("asset", assets.List()...)

	var out []prices.PriceData
	if err := c.transport.Get(transport.WithRoute(ctx, "/price"), transport.BuildURLWithQuery("/price", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}
