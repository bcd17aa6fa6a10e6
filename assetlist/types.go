package assetlist

// AssetListInfo is one entry of the asset-list index.
type AssetListInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AssetList is the full contents of a single catalog.
type AssetList struct {
	Name        string      `json:"name"`
	Provider    string      `json:"provider,omitempty"`
	Description string      `json:"description,omitempty"`
	Version     string      `json:"version,omitempty"`
	Feedback    string      `json:"feedback,omitempty"`
	Network     string      `json:"network,omitempty"`
	Assets      []AssetInfo `json:"assets"`
}

type AssetInfo struct {
	Code     string `json:"code,omitempty"`
	Issuer   string `json:"issuer,omitempty"`
	Contract string `json:"contract,omitempty"`
	Name     string `json:"name,omitempty"`
	Org      string `json:"org,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Decimals *int   `json:"decimals,omitempty"`
}

// AssetNameSymbol is the compact token description embedded in position responses.
type AssetNameSymbol struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}
