package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"CATALOG_HTTP_ADDR", "CATALOG_GRPC_ADDR", "CATALOG_SOURCE", "CORS_ALLOW_ORIGIN"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "", cfg.GRPCAddr)
	assert.Equal(t, "static", cfg.CatalogSource)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_HTTP_ADDR", ":9090")
	t.Setenv("CATALOG_SOURCE", "postgres")
	cfg := Load()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.CatalogSource)
}

func TestGetenv_TrimsAndFallsBack(t *testing.T) {
	t.Setenv("CATALOG_HTTP_ADDR", "  :7070 ")
	t.Setenv("CATALOG_SOURCE", "   ")
	assert.Equal(t, ":7070", getenv("CATALOG_HTTP_ADDR", ":5000"))
	assert.Equal(t, "static", getenv("CATALOG_SOURCE", "static"))
	assert.Equal(t, "fallback", getenv("CATALOG_TEST_UNSET_KEY", "fallback"))
}
