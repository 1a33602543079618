package product

// SearchV1Request payload of the v1 search.
// swagger:model SearchV1Request
type SearchV1Request struct {
	Query    string `json:"query"    example:"mac"`
	Category string `json:"category" example:"electronics"`
}

// SearchV2Request payload of the v2 search. The flat min_price/max_price
// shape wins over price_range when either flat field is set.
// swagger:model SearchV2Request
type SearchV2Request struct {
	Query      string      `json:"query"       example:"mac"`
	Category   string      `json:"category"    example:"electronics"`
	MinPrice   *Price      `json:"min_price"   swaggertype:"number" example:"500"`
	MaxPrice   *Price      `json:"max_price"   swaggertype:"number" example:"2400"`
	PriceRange *PriceRange `json:"price_range"`
}

// ResolvedPriceRange returns the single range the v2 filter applies, or nil.
func (r SearchV2Request) ResolvedPriceRange() *PriceRange {
	if r.MinPrice != nil || r.MaxPrice != nil {
		return &PriceRange{Min: r.MinPrice, Max: r.MaxPrice}
	}
	return r.PriceRange
}

// SearchV3Request payload of the v3 search.
// swagger:model SearchV3Request
type SearchV3Request struct {
	Query    string `json:"query"    example:"pro"`
	Category string `json:"category" example:"electronics"`
	InStock  *bool  `json:"in_stock" example:"true"`
}

type V1Params struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

type V2Params struct {
	Query      string     `json:"query"`
	Category   string     `json:"category"`
	PriceRange PriceRange `json:"price_range"`
}

type V3Params struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	InStock  *bool  `json:"in_stock"`
}

// SearchResponse is the envelope every search version answers with.
// swagger:model
type SearchResponse struct {
	Products     any    `json:"products"`
	Version      string `json:"version"       example:"v1"`
	Total        int    `json:"total"         example:"2"`
	SearchParams any    `json:"search_params"`
	Message      string `json:"message"`
}

// Info is the static description served at the root.
// swagger:model
type Info struct {
	Message            string            `json:"message"`
	AvailableEndpoints map[string]string `json:"available_endpoints"`
	DemoFlow           []string          `json:"demo_flow"`
}
