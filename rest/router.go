package rest

import (
	"net/http"

	_ "chainspace.io/ledger/rest/docs" // needed by https://github.com/swaggo/gin-swagger

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
)

type controller interface {
	RegisterRoutes(*gin.Engine)
}

// @title Ledger API
// @version 1.0
// @description Proof-of-work ledger node endpoints

// @license.name MIT

func (s *Service) makeRouter(controllers ...controller) *gin.Engine {
	// Set the router as the default one shipped with Gin
	router := gin.Default()
	// Add cors
	router.Use(cors.Default())
	if s.maxPayload > 0 {
		router.Use(limitPayload(int64(s.maxPayload)))
	}

	// Serve Swagger frontend static files using gin-swagger middleware
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	for _, v := range controllers {
		v.RegisterRoutes(router)
	}

	return router
}

func limitPayload(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
