package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jonasarte-backend/internal/config"
	"jonasarte-backend/internal/handlers"
	"jonasarte-backend/internal/store"
)

func main() {
	config.Load()
	cfg := config.AppEnv

	st := store.New(cfg.DataDir)

	r := gin.Default()
	r.Use(cors.Default())

	if err := handlers.Register(r, st, cfg); err != nil {
		log.Fatal(err)
	}

	log.Println("server listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
