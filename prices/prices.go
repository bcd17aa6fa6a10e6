package prices

// PriceData is the quoted price of one asset.
type PriceData struct {
	Asset             string  `json:"asset"`
	ReferenceCurrency string  `json:"referenceCurrency,omitempty"`
	Price             float64 `json:"price"`
	Timestamp         string  `json:"timestamp,omitempty"`
}

// Assets is the set of asset addresses a price lookup covers. Build it with Asset or
// AssetsOf. The zero value has no entries and sends no asset parameter.
type Assets struct {
	list []string
}

// Asset looks up a single asset.
func Asset(address string) Assets {
	return Assets{list: []string{address}}
}

// AssetsOf looks up several assets. Order and duplicates are kept as given.
func AssetsOf(addresses ...string) Assets {
	list := make([]string, len(addresses))
	copy(list, addresses)
	return Assets{list: list}
}

// List returns the addresses in input order.
func (a Assets) List() []string {
	out := make([]string, len(a.list))
	copy(out, a.list)
	return out
}

func (a Assets) Len() int {
	return len(a.list)
}
