// Package client calls the catalog search API and can switch API versions
// at runtime.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	prod "github.com/MikeMC777/catalog-search/internal/product"
)

var (
	ErrUnknownVersion = errors.New("unknown api version")
	ErrStatus         = errors.New("unexpected status")
)

var versions = map[string]bool{"v1": true, "v2": true, "v3": true}

// ProductDTO is a product as any search version returns it. InStock is nil
// when the version redacts it.
type ProductDTO struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Price    prod.Price `json:"price"`
	InStock  *bool      `json:"in_stock,omitempty"`
}

// SearchRequest carries every field any version understands. Fields a
// version does not know are ignored by the server.
type SearchRequest struct {
	Query      string           `json:"query,omitempty"`
	Category   string           `json:"category,omitempty"`
	MinPrice   *prod.Price      `json:"min_price,omitempty"`
	MaxPrice   *prod.Price      `json:"max_price,omitempty"`
	PriceRange *prod.PriceRange `json:"price_range,omitempty"`
	InStock    *bool            `json:"in_stock,omitempty"`
}

type SearchResult struct {
	Products     []ProductDTO    `json:"products"`
	Version      string          `json:"version"`
	Total        int             `json:"total"`
	SearchParams json.RawMessage `json:"search_params"`
	Message      string          `json:"message"`
}

type Catalog struct {
	HTTP    *http.Client
	BaseURL string

	mu      sync.RWMutex
	version string
}

func NewCatalog(baseURL, version string) (*Catalog, error) {
	c := &Catalog{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
	if err := c.UseVersion(version); err != nil {
		return nil, err
	}
	return c, nil
}

// UseVersion points later searches at another API version.
func (c *Catalog) UseVersion(v string) error {
	if !versions[v] {
		return fmt.Errorf("%w: %q", ErrUnknownVersion, v)
	}
	c.mu.Lock()
	c.version = v
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Catalog) Search(ctx context.Context, in SearchRequest) (*SearchResult, error) {
	v := c.Version()
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s/products/search", c.BaseURL, v),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out SearchResult
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("%s search: %w", v, err)
	}
	return &out, nil
}

func (c *Catalog) Info(ctx context.Context) (*prod.Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return nil, err
	}
	var out prod.Info
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("info: %w", err)
	}
	return &out, nil
}

func (c *Catalog) do(req *http.Request, dst any) error {
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		var e prod.HTTPError
		_ = json.NewDecoder(res.Body).Decode(&e)
		if e.Error != "" {
			return fmt.Errorf("%w %s: %s", ErrStatus, res.Status, e.Error)
		}
		return fmt.Errorf("%w %s", ErrStatus, res.Status)
	}
	return json.NewDecoder(res.Body).Decode(dst)
}
