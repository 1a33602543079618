// @title        Catalog Search API
// @version      1.0
// @description  In-memory product catalog with three versioned search endpoints.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/MikeMC777/catalog-search/internal/config"
	"github.com/MikeMC777/catalog-search/internal/grpcx"
	prod "github.com/MikeMC777/catalog-search/internal/product"
)

func openSource(ctx context.Context, cfg config.Config) (prod.Source, func(), error) {
	switch cfg.CatalogSource {
	case "", "static":
		return prod.StaticSource{}, func() {}, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return prod.NewPGSource(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", prod.ErrUnknownSource, cfg.CatalogSource)
	}
}

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		log.Fatalf("catalog source: %v", err)
	}
	cat, err := prod.Load(ctx, src)
	closeSrc()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("[catalog] loaded %d products from %s", cat.Len(), cfg.CatalogSource)

	var (
		grpcSrv *grpc.Server
		hs      *health.Server
	)
	if cfg.GRPCAddr != "" {
		grpcSrv, hs = grpcx.NewServer()
		go func() {
			if err := grpcx.Serve(grpcSrv, cfg.GRPCAddr); err != nil {
				log.Fatalf("grpc: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: newRouter(cat, cfg.CORSAllowOrigin)}
	go func() {
		log.Printf("catalog-service listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("catalog-service shutting down")
	if hs != nil {
		hs.Shutdown()
		grpcSrv.GracefulStop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}
