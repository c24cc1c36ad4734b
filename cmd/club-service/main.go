package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/badgers-labs/club-service/internal/api"
	"github.com/badgers-labs/club-service/internal/config"
	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting Club Service...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	// Conectar a Redis. El dashboard funciona sin cache si Redis no está
	// disponible.
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Inicializar servicios
	socioService := services.NewSocioService(db, logger)
	pagoService := services.NewPagoService(db, logger)
	productoService := services.NewProductoService(db, logger)
	ventaService := services.NewVentaService(db, logger)
	gastoService := services.NewGastoService(db, logger)
	dashboardService := services.NewDashboardService(db, redis, cfg.Dashboard.CacheTTL, logger)

	// Inicializar API
	apiHandler := api.NewAPI(
		socioService,
		pagoService,
		productoService,
		ventaService,
		gastoService,
		dashboardService,
		logger,
	)

	// Configurar router
	router := setupRouter(apiHandler, cfg)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Middleware de CORS para desarrollo
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "club-service",
			"version":   "1.0.0",
		})
	})

	// API v1
	v1 := router.Group("/v1")
	{
		// Socios
		socios := v1.Group("/socios")
		{
			socios.GET("", apiHandler.ListSocios)
			socios.POST("", apiHandler.CreateSocio)
			socios.POST("/import", apiHandler.ImportSocios)
			socios.DELETE("/cleanup", apiHandler.CleanupSocios)
			socios.GET("/:ci", apiHandler.GetSocio)
			socios.PUT("/:ci", apiHandler.UpdateSocio)
			socios.DELETE("/:ci", apiHandler.DeleteSocio)
		}

		// Pagos de cuotas mensuales
		pagos := v1.Group("/pagos")
		{
			pagos.GET("", apiHandler.ListPagos)
			pagos.POST("", apiHandler.CreatePago)
			pagos.POST("/import", apiHandler.ImportPagos)
			pagos.GET("/:id", apiHandler.GetPago)
			pagos.PUT("/:id", apiHandler.UpdatePago)
			pagos.DELETE("/:id", apiHandler.DeletePago)
		}

		// Inventario
		productos := v1.Group("/productos")
		{
			productos.GET("", apiHandler.ListProductos)
			productos.POST("", apiHandler.CreateProducto)
			productos.POST("/import", apiHandler.ImportProductos)
			productos.GET("/:nombre", apiHandler.GetProducto)
			productos.PUT("/:nombre", apiHandler.UpdateProducto)
			productos.DELETE("/:nombre", apiHandler.DeleteProducto)
		}

		// Ventas
		ventas := v1.Group("/ventas")
		{
			ventas.GET("", apiHandler.ListVentas)
			ventas.POST("", apiHandler.CreateVenta)
			ventas.GET("/:id", apiHandler.GetVenta)
			ventas.DELETE("/:id", apiHandler.DeleteVenta)
		}

		// Gastos
		gastos := v1.Group("/gastos")
		{
			gastos.GET("", apiHandler.ListGastos)
			gastos.POST("", apiHandler.CreateGasto)
			gastos.GET("/:id", apiHandler.GetGasto)
			gastos.DELETE("/:id", apiHandler.DeleteGasto)
		}

		// Dashboard
		v1.GET("/dashboard/stats", apiHandler.GetDashboardStats)
	}

	return router
}
