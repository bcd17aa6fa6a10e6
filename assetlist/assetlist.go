package assetlist

import (
	"fmt"
)

// List is one of the curated asset catalogs the API understands natively.
type List uint8

const (
	Soroswap List = iota
	StellarExpert
	Lobstr
	Aqua

	numLists
)

// canonical and sourceURLs are indexed by List. Every variant must have an entry in
// both tables; init refuses to start otherwise.
var canonical = [numLists]string{
	Soroswap:      "soroswap",
	StellarExpert: "stellar_expert",
	Lobstr:        "lobstr",
	Aqua:          "aqua",
}

var sourceURLs = [numLists]string{
	Soroswap:      "https://raw.githubusercontent.com/soroswap/token-list/main/tokenList.json",
	StellarExpert: "https://api.stellar.expert/explorer/public/asset-list/top50",
	Lobstr:        "https://lobstr.co/api/v1/sep/assets/curated.json",
	Aqua:          "https://amm-api.aqua.network/tokens/?format=json&pooled=true&size=200",
}

var (
	byName = make(map[string]List, numLists)
	byURL  = make(map[string]List, numLists)
)

func init() {
	for l := List(0); l < numLists; l++ {
		name, url := canonical[l], sourceURLs[l]
		if name == "" || url == "" {
			panic(fmt.Sprintf("assetlist: list %d is missing its canonical name or source URL", l))
		}
		if prev, dup := byName[name]; dup {
			panic(fmt.Sprintf("assetlist: lists %d and %d share the name %q", prev, l, name))
		}
		if prev, dup := byURL[url]; dup {
			panic(fmt.Sprintf("assetlist: lists %d and %d share the URL %q", prev, l, url))
		}
		byName[name] = l
		byURL[url] = l
	}
}

// All returns every known list in declaration order.
func All() []List {
	lists := make([]List, 0, numLists)
	for l := List(0); l < numLists; l++ {
		lists = append(lists, l)
	}
	return lists
}

// Valid reports whether l is a declared variant.
func (l List) Valid() bool {
	return l < numLists
}

// Name is the short identifier used on the wire.
func (l List) Name() string {
	if !l.Valid() {
		return ""
	}
	return canonical[l]
}

// URL is the location the catalog is published at.
func (l List) URL() string {
	if !l.Valid() {
		return ""
	}
	return sourceURLs[l]
}

func (l List) String() string {
	if !l.Valid() {
		return fmt.Sprintf("List(%d)", uint8(l))
	}
	return canonical[l]
}

// AssetListName falls back to String for undeclared variants so the value still
// reaches the service, which rejects it.
func (l List) AssetListName() string {
	return l.String()
}

func (l List) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("assetlist: unknown list %d", uint8(l))
	}
	return []byte(canonical[l]), nil
}

func (l *List) UnmarshalText(text []byte) error {
	found, ok := Lookup(string(text))
	if !ok {
		return fmt.Errorf("assetlist: unknown list %q", text)
	}
	*l = found
	return nil
}

// Lookup finds a known list by its canonical name or its source URL.
func Lookup(s string) (List, bool) {
	if l, ok := byName[s]; ok {
		return l, true
	}
	l, ok := byURL[s]
	return l, ok
}

// Source names an asset list: either a known List or a Custom one.
type Source interface {
	AssetListName() string
}

// Custom is a caller-defined asset list, given by name or URL. A Custom value equal to
// a known list's source URL resolves to that list's canonical name; anything else is
// sent as is.
type Custom string

func (c Custom) AssetListName() string {
	if l, ok := byURL[string(c)]; ok {
		return canonical[l]
	}
	return string(c)
}

func (c Custom) MarshalText() ([]byte, error) {
	return []byte(c.AssetListName()), nil
}

// Normalize converts sources to their wire names, preserving length and order.
// It never fails: unrecognised values pass through untouched. A nil element becomes
// the empty string.
func Normalize(sources []Source) []string {
	if sources == nil {
		return nil
	}
	out := make([]string, len(sources))
	for i, s := range sources {
		if s == nil {
			continue
		}
		out[i] = s.AssetListName()
	}
	return out
}

// Sources wraps plain strings as Custom sources.
func Sources(names ...string) []Source {
	out := make([]Source, len(names))
	for i, n := range names {
		out[i] = Custom(n)
	}
	return out
}
