package server

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/config"
	"github.com/UndyingTomb/CSCE-548/internal/handlers"
	"github.com/UndyingTomb/CSCE-548/internal/middlewares"
	"github.com/UndyingTomb/CSCE-548/internal/repositories"
	"github.com/UndyingTomb/CSCE-548/internal/routes"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

// Services bundles the business layer shared by the HTTP API and the console.
type Services struct {
	Sets       *services.SetService
	Cards      *services.CardService
	Conditions *services.ConditionService
	Inventory  *services.InventoryService
}

// NewServices wires the Postgres repositories into the business layer.
func NewServices(l logrus.FieldLogger, pool *pgxpool.Pool) *Services {
	setRepo := repositories.NewSetRepository(pool)
	cardRepo := repositories.NewCardRepository(pool)
	conditionRepo := repositories.NewConditionRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)

	return &Services{
		Sets:       services.NewSetService(l, setRepo),
		Cards:      services.NewCardService(l, cardRepo),
		Conditions: services.NewConditionService(l, conditionRepo),
		Inventory:  services.NewInventoryService(l, inventoryRepo),
	}
}

// NewRouter builds the gin engine for the collection API.
func NewRouter(cfg *config.Config, l logrus.FieldLogger, db handlers.Pinger, svc *Services) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestID, middlewares.Logger(l))

	corsConfig := cors.DefaultConfig()
	if slices.Contains(cfg.CORSAllowOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middlewares.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	healthHandler := handlers.NewHealthHandler(db)
	setHandler := handlers.NewSetHandler(l, svc.Sets)
	cardHandler := handlers.NewCardHandler(l, svc.Cards)
	conditionHandler := handlers.NewConditionHandler(l, svc.Conditions)
	inventoryHandler := handlers.NewInventoryHandler(l, svc.Inventory)

	routes.RegisterRoutes(router, healthHandler, setHandler, cardHandler, conditionHandler, inventoryHandler)
	return router
}

// NewServer serves svc, the same services the rest of the process uses.
func NewServer(cfg *config.Config, l logrus.FieldLogger, db handlers.Pinger, svc *Services) *http.Server {
	router := NewRouter(cfg, l, db, svc)

	// Create and configure the HTTP server
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
