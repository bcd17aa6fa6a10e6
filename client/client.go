package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/defistate/soroswap-client-go/networks"
	"github.com/defistate/soroswap-client-go/transport"
	"github.com/prometheus/client_golang/prometheus"
)

const DefaultBaseURL = "https://api.soroswap.finance"

// Logger defines a standard interface for structured, leveled logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds the configuration for the client.
type Config struct {
	APIKey string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// DefaultNetwork is used by every call that does not name a network.
	// It defaults to mainnet.
	DefaultNetwork networks.Network
	// Timeout defaults to transport.DefaultTimeout.
	Timeout time.Duration
}

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.DefaultNetwork == "" {
		c.DefaultNetwork = networks.Mainnet
	}
	if c.Timeout == 0 {
		c.Timeout = transport.DefaultTimeout
	}
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if !c.DefaultNetwork.Valid() {
		return fmt.Errorf("config: unsupported DefaultNetwork %q", c.DefaultNetwork)
	}
	if c.Timeout < 0 {
		return errors.New("config: Timeout must not be negative")
	}
	return nil
}

// Option configures the Client.
// The interface method is unexported to prevent external modification after New.
type Option interface {
	apply(*Client)
}

type funcOption func(*Client)

func (f funcOption) apply(c *Client) {
	f(c)
}

func newOption(f func(*Client)) Option {
	return funcOption(f)
}

// WithLogger sets the logger used by the client and its HTTP transport.
func WithLogger(logger Logger) Option {
	return newOption(func(c *Client) {
		c.logger = logger
	})
}

// WithTransport replaces the HTTP transport. APIKey, BaseURL and Timeout are then
// not used.
func WithTransport(t transport.Transport) Option {
	return newOption(func(c *Client) {
		c.transport = t
	})
}

// WithHTTPClient sets the http.Client used by the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return newOption(func(c *Client) {
		c.httpClient = hc
	})
}

// WithRegisterer sets where request metrics are registered. Without it metrics go
// to a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return newOption(func(c *Client) {
		c.registry = reg
	})
}

// Client exposes the Soroswap API as typed calls. Its configuration is fixed at
// construction and it is safe for concurrent use.
type Client struct {
	transport transport.Transport
	network   networks.Network
	logger    Logger

	httpClient *http.Client
	registry   prometheus.Registerer
}

func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{network: cfg.DefaultNetwork}
	for _, opt := range opts {
		opt.apply(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if c.transport == nil {
		if c.registry == nil {
			c.registry = prometheus.NewRegistry()
		}
		t, err := transport.NewHTTPTransport(transport.Config{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			Timeout:    cfg.Timeout,
			HTTPClient: c.httpClient,
			Logger:     c.logger,
			Registry:   c.registry,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create transport: %w", err)
		}
		c.transport = t
	}

	c.logger.Info("Client created", "baseURL", cfg.BaseURL, "network", c.network)
	return c, nil
}

// DefaultNetwork returns the network used when a call does not name one.
func (c *Client) DefaultNetwork() networks.Network {
	return c.network
}

func (c *Client) resolve(network networks.Network) networks.Network {
	return networks.Resolve(network, c.network)
}

// networkQuery starts the query every network-scoped call carries.
func (c *Client) networkQuery(network networks.Network) *transport.Query {
	return transport.NewQuery().Set("network", c.resolve(network).String())
}
