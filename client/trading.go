package client

import (
	"context"

	"github.com/defistate/soroswap-client-go/assetlist"
	"github.com/defistate/soroswap-client-go/networks"
	"github.com/defistate/soroswap-client-go/quotes"
	"github.com/defistate/soroswap-client-go/transactions"
	"github.com/defistate/soroswap-client-go/transport"
)

// quoteBody is the wire form of a quote request. Its AssetList shadows the embedded
// one so that asset lists always go out under their canonical names.
type quoteBody struct {
	quotes.QuoteRequest
	AssetList []string `json:"assetList,omitempty"`
}

// Quote asks the service for the best route for a trade. The caller's request is
// not modified.
func (c *Client) Quote(ctx context.Context, req quotes.QuoteRequest, network networks.Network) (*quotes.QuoteResponse, error) {
	path := transport.BuildURLWithQuery("/quote", c.networkQuery(network))
	body := quoteBody{
		QuoteRequest: req,
		AssetList:    assetlist.Normalize(req.AssetList),
	}

	var out quotes.QuoteResponse
	if err := c.transport.Post(transport.WithRoute(ctx, "/quote"), path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Build turns a quote into an unsigned transaction envelope.
func (c *Client) Build(ctx context.Context, req quotes.BuildQuoteRequest, network networks.Network) (*quotes.BuildQuoteResponse, error) {
	path := transport.BuildURLWithQuery("/quote/build", c.networkQuery(network))

	var out quotes.BuildQuoteResponse
	if err := c.transport.Post(transport.WithRoute(ctx, "/quote/build"), path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Send submits a signed transaction envelope. With launchtube set the service
// submits it through Launchtube instead of directly.
func (c *Client) Send(ctx context.Context, xdr string, launchtube bool, network networks.Network) (*transactions.SendTransactionResponse, error) {
	path := transport.BuildURLWithQuery("/send", c.networkQuery(network))
	body := transactions.SendRequest{XDR: xdr, Launchtube: launchtube}

	var out transactions.SendTransactionResponse
	if err := c.transport.Post(transport.WithRoute(ctx, "/send"), path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
