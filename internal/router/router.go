package router

import (
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/config"
	"github.com/silvioaquino/pdv-netlify/internal/handler"
	"github.com/silvioaquino/pdv-netlify/internal/middleware"
	"github.com/silvioaquino/pdv-netlify/internal/repository"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	caixaRepo := repository.NewCaixaRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	manualRepo := repository.NewVendaManualRepository(db)
	retiradaRepo := repository.NewRetiradaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	caixaSvc := service.NewCaixaService(caixaRepo, vendaRepo, manualRepo, retiradaRepo)
	vendaSvc := service.NewVendaService(vendaRepo, manualRepo, caixaRepo)
	manualSvc := service.NewVendaManualService(manualRepo, caixaRepo)
	retiradaSvc := service.NewRetiradaService(retiradaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	caixaH := handler.NewCaixaHandler(caixaSvc, rdb)
	vendasH := handler.NewVendasHandler(vendaSvc, rdb)
	webhookH := handler.NewWebhookHandler(vendaSvc)
	manuaisH := handler.NewVendasManuaisHandler(manualSvc)
	retiradasH := handler.NewRetiradasHandler(retiradaSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/", handler.Root())
	r.GET("/health", handler.Health(db, rdb))

	caixa := r.Group("/caixa")
	{
		caixa.GET("/status", caixaH.Status)
		caixa.POST("/abrir", caixaH.Abrir)
		caixa.POST("/fechar", caixaH.Fechar)
		caixa.GET("/data/:data", caixaH.ListarPorData)
	}

	vendas := r.Group("/vendas")
	{
		vendas.GET("", vendasH.ListarTodas)
		vendas.PUT("/:id", vendasH.AtualizarPagamento)
		vendas.GET("/data/:data", vendasH.ListarPorData)

		vendas.POST("/manuais", manuaisH.Registrar)
		vendas.GET("/manuais/caixa/:id", manuaisH.ListarPorCaixa)
		vendas.DELETE("/manuais/:id", manuaisH.Excluir)
	}

	retiradas := r.Group("/retiradas")
	{
		retiradas.POST("", retiradasH.Registrar)
		retiradas.GET("/caixa/:id", retiradasH.ListarPorCaixa)
		retiradas.GET("/data/:data", retiradasH.ListarPorData)
	}

	// Server-to-server entry point for the ordering platform
	r.POST("/webhook/vendas", webhookH.ReceberPedido)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
