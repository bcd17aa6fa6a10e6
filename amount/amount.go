package amount

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

// Amount is an arbitrary-precision integer quantity (reserves, amounts, liquidity shares).
// It is encoded as a decimal JSON string.
type Amount struct {
	*big.Int
}

// New returns an Amount holding v.
func New(v int64) Amount {
	return Amount{Int: big.NewInt(v)}
}

// FromBig returns an Amount holding a copy of v. A nil v yields the zero Amount.
func FromBig(v *big.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{Int: new(big.Int).Set(v)}
}

// Parse reads a user-supplied quantity in decimal or 0x-prefixed hex notation.
// Input is limited to 256 bits; decoding JSON has no such bound.
func Parse(s string) (Amount, error) {
	if strings.TrimSpace(s) == "" {
		return Amount{}, errors.New("empty amount")
	}
	v, ok := math.ParseBig256(s)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	return Amount{Int: v}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsNil reports whether no value has been set.
func (a Amount) IsNil() bool {
	return a.Int == nil
}

func (a Amount) String() string {
	if a.Int == nil {
		return "0"
	}
	return a.Int.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Int == nil {
		return []byte("null"), nil
	}
	return []byte(`"` + a.Int.String() + `"`), nil
}

// UnmarshalJSON accepts both string-encoded and bare JSON integers; the remote
// service is not consistent about which it emits.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.Int = nil
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, ok := new(big.Int).SetString(string(data), 10)
	if !ok {
		return fmt.Errorf("amount: cannot decode %s as an integer", data)
	}
	a.Int = v
	return nil
}
