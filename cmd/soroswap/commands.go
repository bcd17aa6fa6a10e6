package main

import (
	"context"
	"fmt"

	"github.com/defistate/soroswap-client-go/amount"
	"github.com/defistate/soroswap-client-go/assetlist"
	"github.com/defistate/soroswap-client-go/client"
	"github.com/defistate/soroswap-client-go/pools"
	"github.com/defistate/soroswap-client-go/prices"
	"github.com/defistate/soroswap-client-go/quotes"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	ProtocolFlag   = "protocol"
	AssetListFlag  = "asset-list"
	AssetInFlag    = "in"
	AssetOutFlag   = "out"
	AmountFlag     = "amount"
	TradeTypeFlag  = "type"
	SlippageFlag   = "slippage-bps"
	MaxHopsFlag    = "max-hops"
	LaunchtubeFlag = "launchtube"
)

var (
	protocolFlag = &cli.StringSliceFlag{
		Name:    ProtocolFlag,
		Aliases: []string{"p"},
		Usage:   "Protocol to include, repeatable (soroswap, phoenix, aqua, sdex)",
	}
	assetListFlag = &cli.StringSliceFlag{
		Name:    AssetListFlag,
		Aliases: []string{"l"},
		Usage:   "Asset list name or URL, repeatable",
	}
)

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "contract",
			Usage:     "Show the address of a deployed contract",
			ArgsUsage: "<factory|router|aggregator>",
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				if err := requireArgs(cCtx, 1); err != nil {
					return nil, err
				}
				return c.GetContractAddress(ctx, "", client.ContractRole(cCtx.Args().First()))
			}),
		},
		{
			Name:  "protocols",
			Usage: "List the protocols available for routing",
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				return c.GetProtocols(ctx, "")
			}),
		},
		{
			Name:  "pools",
			Usage: "List pools",
			Flags: []cli.Flag{protocolFlag, assetListFlag},
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				return c.GetPools(ctx, "", protocolsFrom(cCtx), assetlist.Sources(cCtx.StringSlice(AssetListFlag)...))
			}),
		},
		{
			Name:      "pool",
			Usage:     "List the pools for a pair of assets",
			ArgsUsage: "<assetA> <assetB>",
			Flags:     []cli.Flag{protocolFlag},
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				if err := requireArgs(cCtx, 2); err != nil {
					return nil, err
				}
				return c.GetPoolByTokens(ctx, cCtx.Args().Get(0), cCtx.Args().Get(1), "", protocolsFrom(cCtx))
			}),
		},
		{
			Name:      "positions",
			Usage:     "List the liquidity positions of a wallet",
			ArgsUsage: "<address>",
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				if err := requireArgs(cCtx, 1); err != nil {
					return nil, err
				}
				return c.GetUserPositions(ctx, cCtx.Args().First(), "")
			}),
		},
		{
			Name:      "asset-lists",
			Usage:     "List the known asset lists, or show one of them",
			ArgsUsage: "[name|url]",
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				if cCtx.NArg() == 0 {
					return c.GetAssetLists(ctx)
				}
				return c.GetAssetListByName(ctx, assetlist.Custom(cCtx.Args().First()))
			}),
		},
		{
			Name:      "price",
			Usage:     "Show the price of one or more assets",
			ArgsUsage: "<asset>...",
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				if cCtx.NArg() == 0 {
					return nil, fmt.Errorf("expected at least one asset")
				}
				return c.GetPrice(ctx, prices.AssetsOf(cCtx.Args().Slice()...), "")
			}),
		},
		{
			Name:  "quote",
			Usage: "Quote a swap",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: AssetInFlag, Usage: "Contract address of the asset sold", Required: true},
				&cli.StringFlag{Name: AssetOutFlag, Usage: "Contract address of the asset bought", Required: true},
				&cli.StringFlag{Name: AmountFlag, Usage: "Amount in the asset's smallest unit, decimal or 0x hex", Required: true},
				&cli.StringFlag{Name: TradeTypeFlag, Usage: "EXACT_IN or EXACT_OUT", Value: string(quotes.ExactIn)},
				&cli.IntFlag{Name: SlippageFlag, Usage: "Slippage tolerance in basis points"},
				&cli.IntFlag{Name: MaxHopsFlag, Usage: "Maximum number of hops in a route"},
				protocolFlag,
				assetListFlag,
			},
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				return c.Quote(ctx, quoteRequestFrom(cCtx), "")
			}),
			Before: func(cCtx *cli.Context) error {
				_, err := amount.Parse(cCtx.String(AmountFlag))
				return err
			},
		},
		{
			Name:      "send",
			Usage:     "Submit a signed transaction",
			ArgsUsage: "<xdr>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: LaunchtubeFlag, Usage: "Submit through Launchtube"},
			},
			Action: action(func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error) {
				if err := requireArgs(cCtx, 1); err != nil {
					return nil, err
				}
				return c.Send(ctx, cCtx.Args().First(), cCtx.Bool(LaunchtubeFlag), "")
			}),
		},
		{
			Name:   "overview",
			Usage:  "Show the available protocols and every contract address",
			Action: action(overview),
		},
	}
}

func requireArgs(cCtx *cli.Context, n int) error {
	if cCtx.NArg() != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", cCtx.Command.Name, n, cCtx.NArg())
	}
	return nil
}

func protocolsFrom(cCtx *cli.Context) []pools.Protocol {
	names := cCtx.StringSlice(ProtocolFlag)
	if len(names) == 0 {
		return nil
	}
	out := make([]pools.Protocol, len(names))
	for i, n := range names {
		out[i] = pools.Protocol(n)
	}
	return out
}

func quoteRequestFrom(cCtx *cli.Context) quotes.QuoteRequest {
	req := quotes.QuoteRequest{
		AssetIn:   cCtx.String(AssetInFlag),
		AssetOut:  cCtx.String(AssetOutFlag),
		Amount:    amount.MustParse(cCtx.String(AmountFlag)),
		TradeType: quotes.TradeType(cCtx.String(TradeTypeFlag)),
		Protocols: protocolsFrom(cCtx),
	}
	if cCtx.IsSet(SlippageFlag) {
		v := cCtx.Int(SlippageFlag)
		req.SlippageBps = &v
	}
	if cCtx.IsSet(MaxHopsFlag) {
		v := cCtx.Int(MaxHopsFlag)
		req.MaxHops = &v
	}
	if lists := cCtx.StringSlice(AssetListFlag); len(lists) > 0 {
		req.AssetList = assetlist.Sources(lists...)
	}
	return req
}

type overviewResult struct {
	Network   string                         `json:"network"`
	Protocols []pools.Protocol               `json:"protocols"`
	Contracts map[client.ContractRole]string `json:"contracts"`
}

// overview fetches the protocol list and every contract address concurrently.
func overview(ctx context.Context, c *client.Client, _ *cli.Context) (any, error) {
	g, ctx := errgroup.WithContext(ctx)

	var protocols []pools.Protocol
	g.Go(func() error {
		var err error
		protocols, err = c.GetProtocols(ctx, "")
		return err
	})

	addresses := make([]string, len(client.ContractRoles))
	for i, role := range client.ContractRoles {
		g.Go(func() error {
			addr, err := c.GetContractAddress(ctx, "", role)
			if err != nil {
				return fmt.Errorf("failed to get %s address: %w", role, err)
			}
			addresses[i] = addr.Address
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := overviewResult{
		Network:   c.DefaultNetwork().String(),
		Protocols: protocols,
		Contracts: make(map[client.ContractRole]string, len(addresses)),
	}
	for i, role := range client.ContractRoles {
		out.Contracts[role] = addresses[i]
	}
	return out, nil
}
