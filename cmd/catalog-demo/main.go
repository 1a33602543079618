package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/catalog-search/internal/client"
	"github.com/MikeMC777/catalog-search/internal/config"
	prod "github.com/MikeMC777/catalog-search/internal/product"
)

type options struct {
	base     string
	query    string
	category string
	min      string
	max      string
	inStock  string
}

func parsePrice(s string) (*prod.Price, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", s, err)
	}
	return &prod.Price{Decimal: d}, nil
}

func parseStock(s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("in-stock %q: %w", s, err)
	}
	return &b, nil
}

// buildRequest turns flags into the single request the demo replays
// against every version.
func buildRequest(o options) (client.SearchRequest, error) {
	minPrice, err := parsePrice(o.min)
	if err != nil {
		return client.SearchRequest{}, err
	}
	maxPrice, err := parsePrice(o.max)
	if err != nil {
		return client.SearchRequest{}, err
	}
	stock, err := parseStock(o.inStock)
	if err != nil {
		return client.SearchRequest{}, err
	}
	return client.SearchRequest{
		Query:    o.query,
		Category: o.category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		InStock:  stock,
	}, nil
}

func run(ctx context.Context, w io.Writer, o options) error {
	req, err := buildRequest(o)
	if err != nil {
		return err
	}
	c, err := client.NewCatalog(o.base, "v1")
	if err != nil {
		return err
	}
	info, err := c.Info(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, info.Message)
	for _, step := range info.DemoFlow {
		fmt.Fprintln(w, "  "+step)
	}

	for _, v := range []string{"v1", "v2", "v3"} {
		if err := c.UseVersion(v); err != nil {
			return err
		}
		res, err := c.Search(ctx, req)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(res.Products))
		for _, p := range res.Products {
			names = append(names, p.Name)
		}
		fmt.Fprintf(w, "[%s] total=%d %s\n", res.Version, res.Total, strings.Join(names, ", "))
	}
	return nil
}

func main() {
	cfg := config.Load()
	var o options
	flag.StringVar(&o.base, "base", cfg.CatalogBaseURL, "catalog service base url")
	flag.StringVar(&o.query, "query", "", "name substring")
	flag.StringVar(&o.category, "category", "", "exact category")
	flag.StringVar(&o.min, "min", "", "minimum price (v2)")
	flag.StringVar(&o.max, "max", "", "maximum price (v2)")
	flag.StringVar(&o.inStock, "in-stock", "", "true or false (v3)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := run(ctx, os.Stdout, o); err != nil {
		log.Printf("catalog-demo: %v", err)
		os.Exit(1)
	}
}
