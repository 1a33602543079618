package main

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeMC777/catalog-search/internal/config"
	prod "github.com/MikeMC777/catalog-search/internal/product"
)

func TestOpenSource(t *testing.T) {
	src, closeSrc, err := openSource(context.Background(), config.Config{CatalogSource: "static"})
	if err != nil {
		t.Fatalf("static source: %v", err)
	}
	defer closeSrc()
	if _, ok := src.(prod.StaticSource); !ok {
		t.Fatalf("got %T, want StaticSource", src)
	}

	_, _, err = openSource(context.Background(), config.Config{CatalogSource: "redis"})
	if !errors.Is(err, prod.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestOpenSource_PostgresBadDSN(t *testing.T) {
	_, _, err := openSource(context.Background(), config.Config{CatalogSource: "postgres", PostgresDSN: "postgres://%zz"})
	if err == nil {
		t.Fatalf("expected error for malformed dsn")
	}
}
