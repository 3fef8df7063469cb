package main

import (
	"log"

	"attendance-backend/config"
	"attendance-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan.")
	}

	cfg := config.Load()
	config.ConnectDB(cfg)

	database.SeedAll(config.DB)
}
