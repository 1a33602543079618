package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/catalog-search/docs"
	"github.com/MikeMC777/catalog-search/internal/httpx"
	prod "github.com/MikeMC777/catalog-search/internal/product"
)

func newRouter(cat *prod.Catalog, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(corsOrigin))

	r.GET("/", rootHandler)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/v1/products/search", searchV1Handler(cat))
	r.POST("/v2/products/search", searchV2Handler(cat))
	r.POST("/v3/products/search", searchV3Handler(cat))
	return r
}
