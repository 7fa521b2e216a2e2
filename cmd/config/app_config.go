package config

import (
	"Wardrobe-Backend/internal/api/handlers"
	"Wardrobe-Backend/internal/api/routes"
	"Wardrobe-Backend/internal/middleware"
	"Wardrobe-Backend/internal/utils"
	"Wardrobe-Backend/internal/utils/storage"
	"Wardrobe-Backend/pkg/aicard"
	"Wardrobe-Backend/pkg/category"
	"Wardrobe-Backend/pkg/feed"
	"Wardrobe-Backend/pkg/group"
	"Wardrobe-Backend/pkg/image"
	"Wardrobe-Backend/pkg/ingest"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(db *firestore.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	feedRepository := feed.NewFeedRepository(db)
	imageRepository := image.NewImageRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	basicsRepository := group.NewGroupRepository(db, "basics")
	recreateRepository := group.NewGroupRepository(db, "recreate")
	aiCardRepository := aicard.NewAiCardRepository(db)
	ingestRepository := ingest.NewIngestRepository(db)

	// Service
	feedService := feed.NewFeedService(feedRepository)
	imageService := image.NewImageService(imageRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository)
	basicsService := group.NewGroupService(basicsRepository)
	recreateService := group.NewGroupService(recreateRepository)
	aiCardService := aicard.NewAiCardService(aiCardRepository)
	ingestService := ingest.NewIngestService(ingestRepository)

	// Handler
	feedHandler := handlers.NewFeedHandler(feedService)
	imageHandler := handlers.NewImageHandler(imageService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	basicsHandler := handlers.NewGroupHandler(basicsService)
	recreateHandler := handlers.NewGroupHandler(recreateService)
	aiCardHandler := handlers.NewAiCardHandler(aiCardService, validator)
	ingestHandler := handlers.NewIngestHandler(ingestService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		FeedHandler:     feedHandler,
		ImageHandler:    imageHandler,
		CategoryHandler: categoryHandler,
		BasicsHandler:   basicsHandler,
		RecreateHandler: recreateHandler,
		AiCardHandler:   aiCardHandler,
		IngestHandler:   ingestHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
