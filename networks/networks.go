package networks

import "fmt"

// Network identifies the Stellar network an operation targets.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// All lists every supported network.
var All = []Network{Mainnet, Testnet}

// Valid reports whether n is one of the supported networks.
func (n Network) Valid() bool {
	for _, known := range All {
		if n == known {
			return true
		}
	}
	return false
}

func (n Network) String() string {
	return string(n)
}

// Resolve returns override when it is set and fallback otherwise.
// The zero Network means "not supplied".
func Resolve(override, fallback Network) Network {
	if override != "" {
		return override
	}
	return fallback
}

// Parse maps a user-supplied name to a Network.
func Parse(s string) (Network, error) {
	n := Network(s)
	if !n.Valid() {
		return "", fmt.Errorf("unsupported network %q", s)
	}
	return n, nil
}
