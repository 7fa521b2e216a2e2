package main

import (
	"Wardrobe-Backend/cmd/config"
	"Wardrobe-Backend/internal/utils"
	"context"
	"log"
	"os"
)

func main() {
	utils.LoadConfig()

	ctx := context.Background()
	db, err := config.ConnectDB(ctx)
	if err != nil {
		log.Fatalf("Firestore connection failed: %v", err)
	}
	defer db.Close()

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
