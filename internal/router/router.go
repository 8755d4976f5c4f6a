package router

import (
	"time"

	"fiscalmanager/internal/config"
	"fiscalmanager/internal/handler"
	"fiscalmanager/internal/middleware"
	"fiscalmanager/internal/repository"
	"fiscalmanager/internal/service"

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
	usuarioRepo := repository.NewUsuarioRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	notaRepo := repository.NewNotaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	empresaSvc := service.NewEmpresaService(empresaRepo, notaRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, empresaRepo, notaRepo, rdb)
	notaSvc := service.NewNotaService(notaRepo, empresaRepo, produtoRepo)
	dashboardSvc := service.NewDashboardService(empresaRepo, produtoRepo, notaRepo)
	relatorioSvc := service.NewRelatorioService(notaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	empresasH := handler.NewEmpresasHandler(empresaSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	notasH := handler.NewNotasHandler(notaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes — every resource is scoped to the authenticated user
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("", jwtMW)
	{
		empresas := api.Group("/empresas")
		{
			empresas.POST("", empresasH.Criar)
			empresas.GET("", empresasH.Listar)
			empresas.GET("/:id", empresasH.ObterPorID)
			empresas.PUT("/:id", empresasH.Atualizar)
			empresas.DELETE("/:id", empresasH.Excluir)
		}

		produtos := api.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.ObterPorID)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Excluir)
		}

		notas := api.Group("/notas")
		{
			notas.POST("", notasH.Emitir)
			notas.GET("", notasH.Listar)
			notas.GET("/:id", notasH.ObterPorID)
			notas.DELETE("/:id", notasH.Excluir)
		}

		api.GET("/dashboard", dashboardH.Resumo)

		relatorios := api.Group("/relatorios")
		{
			relatorios.GET("/pdf", relatoriosH.PDF)
			relatorios.GET("/excel", relatoriosH.Excel)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
