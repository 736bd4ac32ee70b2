package main

import (
	"os"
	"time"

	"github.com/dizzyfrogs/chunklog/config"
	"github.com/dizzyfrogs/chunklog/controllers"
	"github.com/dizzyfrogs/chunklog/routes"
	"github.com/dizzyfrogs/chunklog/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	usda := services.NewUSDAService(cfg.USDAAPIKey)
	goalSvc := services.NewGoalService(db)
	weightSvc := services.NewWeightLogService(db, goalSvc)
	userSvc := services.NewUserService(db, goalSvc, weightSvc)
	authSvc := services.NewAuthService(db, cfg)
	foodSvc := services.NewFoodService(db, usda)
	foodLogSvc := services.NewFoodLogService(db)

	r := routes.SetupRouter(cfg, routes.Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		Users:      controllers.NewUserController(authSvc, userSvc),
		Foods:      controllers.NewFoodController(foodSvc),
		FoodLogs:   controllers.NewFoodLogController(foodLogSvc),
		WeightLogs: controllers.NewWeightLogController(weightSvc, userSvc),
		Goals:      controllers.NewGoalController(goalSvc, userSvc),
	})

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
