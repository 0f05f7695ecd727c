package main

import (
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/handlers"
	"trivia-api/internal/services"

	_ "trivia-api/docs"

	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     CRUD API backing a trivia game: categories, paginated questions, search and quiz rounds
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	triviaService := services.NewTriviaService(db)

	r := handlers.NewRouter(triviaService)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logrus.Infof("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
