package main

import (
	"github.com/gin-gonic/gin"

	"github.com/rsduel/arena-server/internal/api"
	"github.com/rsduel/arena-server/internal/arena"
	"github.com/rsduel/arena-server/internal/config"
	"github.com/rsduel/arena-server/internal/constants"
	"github.com/rsduel/arena-server/internal/logging"
	"github.com/rsduel/arena-server/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, nil)
	}

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	hub := arena.NewBroadcaster()
	registry := arena.NewRegistry(repo, hub, arena.Settings{
		TickWindow:    cfg.TickWindow,
		ActionTimeout: cfg.ActionTimeout,
		RoundTickCap:  cfg.RoundTickCap,
		FoodStock:     cfg.FoodStock,
	})

	handler := api.NewFightHandler(registry, repo, hub)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteCatalog, handler.ListCatalog)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteAgentByID, handler.GetAgent)

		apiRoutes.POST(constants.RouteFights, handler.CreateFight)
		apiRoutes.GET(constants.RouteFightByID, handler.GetFight)
		apiRoutes.POST(constants.RouteFightAction, handler.SubmitAction)
		apiRoutes.POST(constants.RouteFightNextRound, handler.AdvanceRound)
		apiRoutes.GET(constants.RouteFightSpectate, handler.Spectate)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
