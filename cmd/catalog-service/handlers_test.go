package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	prod "github.com/MikeMC777/catalog-search/internal/product"
)

//
// ===== HELPERS =====
//

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return newRouter(prod.NewCatalog(prod.Seed()), "*")
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Products     []map[string]any `json:"products"`
	Version      string           `json:"version"`
	Total        int              `json:"total"`
	SearchParams map[string]any   `json:"search_params"`
	Message      string           `json:"message"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
	if env.Total != len(env.Products) {
		t.Fatalf("total=%d but %d products", env.Total, len(env.Products))
	}
	return env
}

func productNames(env envelope) []string {
	out := make([]string, 0, len(env.Products))
	for _, p := range env.Products {
		out = append(out, p["name"].(string))
	}
	return out
}

func sameNames(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("names=%v, want=%v", got, want)
	}
}

//
// ===== V1 =====
//

func TestSearchV1_EmptyBodyReturnsAllWithoutStock(t *testing.T) {
	r := testRouter()
	for _, body := range []string{"", "{}", "null"} {
		env := decode(t, post(t, r, "/v1/products/search", body))
		if env.Version != "v1" || env.Total != 9 {
			t.Fatalf("body %q: version=%s total=%d", body, env.Version, env.Total)
		}
		if env.Message != msgV1 {
			t.Fatalf("message=%q", env.Message)
		}
		for _, p := range env.Products {
			if _, ok := p["in_stock"]; ok {
				t.Fatalf("v1 must not expose in_stock: %v", p)
			}
		}
		if env.SearchParams["query"] != "" || env.SearchParams["category"] != "" {
			t.Fatalf("search_params=%v", env.SearchParams)
		}
	}
}

func TestSearchV1_QueryAndCategory(t *testing.T) {
	r := testRouter()
	env := decode(t, post(t, r, "/v1/products/search", `{"query":"LAPTOP","category":"Electronics"}`))
	sameNames(t, productNames(env), []string{"Gaming Laptop", "Macbook Pro Laptop"})
	if env.SearchParams["query"] != "LAPTOP" || env.SearchParams["category"] != "Electronics" {
		t.Fatalf("search_params not echoed: %v", env.SearchParams)
	}
	if env.Products[0]["price"].(float64) != 1599 {
		t.Fatalf("price=%v", env.Products[0]["price"])
	}
}

func TestSearchV1_MalformedJSON(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/v1/products/search", `{"query":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	var e prod.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Error == "" {
		t.Fatalf("expected error body, got %s", w.Body.String())
	}
}

//
// ===== V2 =====
//

func TestSearchV2_NoBoundsMatchesV1(t *testing.T) {
	r := testRouter()
	v1 := decode(t, post(t, r, "/v1/products/search", `{"query":"pro"}`))
	v2 := decode(t, post(t, r, "/v2/products/search", `{"query":"pro"}`))
	sameNames(t, productNames(v2), productNames(v1))
	for _, p := range v2.Products {
		if _, ok := p["in_stock"]; ok {
			t.Fatalf("v2 must not expose in_stock: %v", p)
		}
	}
	pr := v2.SearchParams["price_range"].(map[string]any)
	if pr["min"] != nil || pr["max"] != nil {
		t.Fatalf("unexpected price_range echo: %v", pr)
	}
}

func TestSearchV2_NestedMin(t *testing.T) {
	r := testRouter()
	env := decode(t, post(t, r, "/v2/products/search", `{"price_range":{"min":500}}`))
	sameNames(t, productNames(env), []string{"MacBook Pro", "Standing Desk", "iPhone 15", "Gaming Laptop", "Macbook Pro Laptop"})
	if env.Message != msgV2 || env.Version != "v2" {
		t.Fatalf("version=%s message=%q", env.Version, env.Message)
	}
}

func TestSearchV2_FlatOverridesNested(t *testing.T) {
	r := testRouter()
	env := decode(t, post(t, r, "/v2/products/search",
		`{"category":"furniture","max_price":300,"price_range":{"min":400,"max":700}}`))
	sameNames(t, productNames(env), []string{"Coffee Table", "Office Lamp"})

	pr := env.SearchParams["price_range"].(map[string]any)
	if pr["min"] != nil || pr["max"].(float64) != 300 {
		t.Fatalf("resolved price_range=%v", pr)
	}
}

func TestSearchV2_NullFlatFallsBackToNested(t *testing.T) {
	r := testRouter()
	env := decode(t, post(t, r, "/v2/products/search",
		`{"min_price":null,"max_price":null,"price_range":{"min":400,"max":700}}`))
	sameNames(t, productNames(env), []string{"Gaming Chair", "Standing Desk"})
}

//
// ===== V3 =====
//

func TestSearchV3_InStockTrue(t *testing.T) {
	r := testRouter()
	env := decode(t, post(t, r, "/v3/products/search", `{"in_stock":true}`))
	sameNames(t, productNames(env), []string{"MacBook Pro", "Wireless Mouse", "Standing Desk", "Coffee Table", "Macbook Pro Laptop"})
	for _, p := range env.Products {
		if p["in_stock"] != true {
			t.Fatalf("v3 must keep in_stock=true: %v", p)
		}
	}
	if env.SearchParams["in_stock"] != true {
		t.Fatalf("search_params=%v", env.SearchParams)
	}
}

func TestSearchV3_NullInStockKeepsAll(t *testing.T) {
	r := testRouter()
	env := decode(t, post(t, r, "/v3/products/search", `{"in_stock":null,"category":"furniture"}`))
	if env.Total != 4 {
		t.Fatalf("total=%d, want 4", env.Total)
	}
	v, ok := env.SearchParams["in_stock"]
	if !ok || v != nil {
		t.Fatalf("in_stock echo should be null: %v", env.SearchParams)
	}
	for _, p := range env.Products {
		if _, ok := p["in_stock"]; !ok {
			t.Fatalf("v3 must expose in_stock: %v", p)
		}
	}
}

func TestSearchV3_WrongType(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/v3/products/search", `{"in_stock":"yes"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

//
// ===== SHARED =====
//

func TestSearch_Idempotent(t *testing.T) {
	r := testRouter()
	cases := map[string]string{
		"/v1/products/search": `{"query":"mac"}`,
		"/v2/products/search": `{"min_price":100,"max_price":1000}`,
		"/v3/products/search": `{"in_stock":false}`,
	}
	for path, body := range cases {
		a := post(t, r, path, body)
		b := post(t, r, path, body)
		if a.Code != http.StatusOK || !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
			t.Fatalf("%s: responses differ\n%s\n%s", path, a.Body.String(), b.Body.String())
		}
	}
}

func TestRoot_Info(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var got prod.Info
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.AvailableEndpoints) != 3 || len(got.DemoFlow) != 5 {
		t.Fatalf("unexpected info: %+v", got)
	}
	if got.AvailableEndpoints["v2"] != "/v2/products/search (query + category + price_range)" {
		t.Fatalf("v2 endpoint=%q", got.AvailableEndpoints["v2"])
	}
}

func TestHealthz(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestSearch_GetNotAllowed(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/search", nil))
	if w.Code == http.StatusOK {
		t.Fatalf("GET on search endpoint should not succeed")
	}
}

func TestSearchV2_RejectsExtremeExponentPromptly(t *testing.T) {
	r := testRouter()
	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- post(t, r, "/v2/products/search", `{"price_range":{"max":1e900000000}}`)
	}()
	select {
	case w := <-done:
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("request with max=1e900000000 did not finish")
	}
}

func TestSearchV2_QuotedPriceRejected(t *testing.T) {
	r := testRouter()
	for _, body := range []string{`{"min_price":"500"}`, `{"price_range":{"max":"700"}}`} {
		w := post(t, r, "/v2/products/search", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", body, w.Code, w.Body.String())
		}
	}
}
