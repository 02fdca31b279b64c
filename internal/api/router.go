package api

import (
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ghost-console/ghost/internal/api/handler"
	"github.com/ghost-console/ghost/internal/api/middleware"
	"github.com/ghost-console/ghost/internal/core/ports"
	"github.com/ghost-console/ghost/internal/core/service"
)

var (
	promOnce       sync.Once
	promMiddleware echo.MiddlewareFunc
)

// prometheusMiddleware builds the echoprometheus middleware once; its
// collectors register with the default registry, which tolerates only a
// single registration per process.
func prometheusMiddleware() echo.MiddlewareFunc {
	promOnce.Do(func() {
		promMiddleware = echoprometheus.NewMiddleware("ghost")
	})
	return promMiddleware
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store ports.ConfigStore, sender ports.PacketSender, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Renderer = newRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(prometheusMiddleware())

	// --- Dependencies ---
	authService := service.NewAuthService(store, jwtSecret, tokenTTL, log)
	machineService := service.NewMachineService(store, sender, log)
	userService := service.NewUserService(store, log)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(machineService, userService)
	wakeHandler := handler.NewWakeHandler(machineService)
	adminHandler := handler.NewAdminHandler(userService, machineService)
	healthHandler := handler.NewHealthHandler()

	requireAuth := middleware.Auth(authService)
	optionalAuth := middleware.AuthOptional(authService)

	// --- Public routes ---
	e.POST("/token", authHandler.Token)
	e.GET("/", dashboardHandler.Index, optionalAuth)
	e.GET("/logout", authHandler.Logout)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	e.POST("/api/wake", wakeHandler.Wake, requireAuth)

	// --- Admin routes ---
	admin := e.Group("/api/admin", requireAuth, middleware.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.AddUser)
	admin.DELETE("/users/:username", adminHandler.DeleteUser)
	admin.PUT("/users/:username/permissions", adminHandler.SetPermissions)
	admin.POST("/pcs", adminHandler.AddMachine)
	admin.DELETE("/pcs/:mac", adminHandler.DeleteMachine)

	return e
}
