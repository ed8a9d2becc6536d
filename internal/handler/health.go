package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports process and dependency status. The register frontend polls
// it; only the database being down marks the service degraded — the cache is
// best effort and reads fall back to the database without it.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		database := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			database = "disconnected"
		}

		cache := "connected"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			cache = "disconnected"
		}

		status := http.StatusOK
		estado := "ok"
		if database == "disconnected" {
			status = http.StatusServiceUnavailable
			estado = "degraded"
		}

		c.JSON(status, gin.H{
			"status":    estado,
			"database":  database,
			"cache":     cache,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// Root lists what the service exposes.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "pdv-netlify",
			"version": "1.0.0",
			"endpoints": gin.H{
				"caixa":     []string{"GET /caixa/status", "POST /caixa/abrir", "POST /caixa/fechar", "GET /caixa/data/:data"},
				"vendas":    []string{"GET /vendas", "PUT /vendas/:id", "GET /vendas/data/:data"},
				"manuais":   []string{"POST /vendas/manuais", "GET /vendas/manuais/caixa/:id", "DELETE /vendas/manuais/:id"},
				"retiradas": []string{"POST /retiradas", "GET /retiradas/caixa/:id", "GET /retiradas/data/:data"},
				"webhook":   []string{"POST /webhook/vendas"},
				"health":    []string{"GET /health"},
			},
		})
	}
}
