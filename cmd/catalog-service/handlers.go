package main

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	prod "github.com/MikeMC777/catalog-search/internal/product"
)

const (
	msgV1 = "V1 API - Basic search (query + category)"
	msgV2 = "V2 API - Enhanced search (query + category + price_range)"
	msgV3 = "V3 API - Inventory search (query + category + in_stock)"
)

// bindOptional decodes a JSON body into dst. An empty body leaves dst at its
// zero value.
func bindOptional(c *gin.Context, dst any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, prod.HTTPError{Error: err.Error()})
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if err := binding.JSON.BindBody(body, dst); err != nil {
		c.JSON(http.StatusBadRequest, prod.HTTPError{Error: err.Error()})
		return false
	}
	return true
}

// searchV1Handler godoc
// @Summary      Basic search
// @Description  Filters by name substring and exact category. Products omit in_stock.
// @Tags         v1
// @Accept       json
// @Produce      json
// @Param        body  body      product.SearchV1Request  false  "search parameters"
// @Success      200   {object}  product.SearchResponse
// @Failure      400   {object}  product.HTTPError
// @Router       /v1/products/search [post]
func searchV1Handler(cat *prod.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.SearchV1Request
		if !bindOptional(c, &in) {
			return
		}
		res := cat.V1(in.Query, in.Category)
		c.JSON(http.StatusOK, prod.SearchResponse{
			Products:     res,
			Version:      "v1",
			Total:        len(res),
			SearchParams: prod.V1Params{Query: in.Query, Category: in.Category},
			Message:      msgV1,
		})
	}
}

// searchV2Handler godoc
// @Summary      Search with price range
// @Description  v1 plus an inclusive price range, given flat (min_price/max_price) or nested (price_range). The flat shape wins.
// @Tags         v2
// @Accept       json
// @Produce      json
// @Param        body  body      product.SearchV2Request  false  "search parameters"
// @Success      200   {object}  product.SearchResponse
// @Failure      400   {object}  product.HTTPError
// @Router       /v2/products/search [post]
func searchV2Handler(cat *prod.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.SearchV2Request
		if !bindOptional(c, &in) {
			return
		}
		pr := in.ResolvedPriceRange()
		res := cat.V2(in.Query, in.Category, pr)

		params := prod.V2Params{Query: in.Query, Category: in.Category}
		if pr != nil {
			params.PriceRange = *pr
		}
		c.JSON(http.StatusOK, prod.SearchResponse{
			Products:     res,
			Version:      "v2",
			Total:        len(res),
			SearchParams: params,
			Message:      msgV2,
		})
	}
}

// searchV3Handler godoc
// @Summary      Search with stock filter
// @Description  Name and category filters plus an optional in_stock flag. Products keep in_stock.
// @Tags         v3
// @Accept       json
// @Produce      json
// @Param        body  body      product.SearchV3Request  false  "search parameters"
// @Success      200   {object}  product.SearchResponse
// @Failure      400   {object}  product.HTTPError
// @Router       /v3/products/search [post]
func searchV3Handler(cat *prod.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.SearchV3Request
		if !bindOptional(c, &in) {
			return
		}
		res := cat.V3(in.Query, in.Category, in.InStock)
		c.JSON(http.StatusOK, prod.SearchResponse{
			Products:     res,
			Version:      "v3",
			Total:        len(res),
			SearchParams: prod.V3Params{Query: in.Query, Category: in.Category, InStock: in.InStock},
			Message:      msgV3,
		})
	}
}

var info = prod.Info{
	Message: "MCP Demo API - Live Code Change Demo",
	AvailableEndpoints: map[string]string{
		"v1": "/v1/products/search (query + category)",
		"v2": "/v2/products/search (query + category + price_range)",
		"v3": "/v3/products/search (query + category + in_stock)",
	},
	DemoFlow: []string{
		"1. Start MCP server pointing to v1",
		"2. Test basic search capabilities",
		"3. Live change MCP server to point to v2",
		"4. Use Tool Refresh in Claude Desktop",
		"5. Show new price_range capability",
	},
}

// rootHandler godoc
// @Summary  Available endpoints and demo flow
// @Tags     meta
// @Produce  json
// @Success  200  {object}  product.Info
// @Router   / [get]
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, info)
}
