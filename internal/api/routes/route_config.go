package routes

import (
	"Wardrobe-Backend/internal/api/handlers"
	"Wardrobe-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	FeedHandler     handlers.FeedHandler
	ImageHandler    handlers.ImageHandler
	CategoryHandler handlers.CategoryHandler
	BasicsHandler   handlers.GroupHandler
	RecreateHandler handlers.GroupHandler
	AiCardHandler   handlers.AiCardHandler
	IngestHandler   handlers.IngestHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Health()
	c.RecentItems()
	c.Images()
	c.Categories()
	c.Groups()
	c.AiCards()
	c.Ingest()

	c.App.Static("/uploads", "./uploads")
}

func (c *Config) Health() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "status": "up"})
	})
}

func (c *Config) RecentItems() {
	items := c.App.Group("/api/recent-items")
	{
		items.Get("", c.FeedHandler.GetFeedItems)
		items.Post("", c.FeedHandler.CreateFeedItem)
		items.Get("/:id", c.FeedHandler.GetFeedItemDetails)
		items.Put("/:id", c.FeedHandler.UpdateFeedItem)
		items.Delete("/:id", c.FeedHandler.DeleteFeedItem)
	}
}

func (c *Config) Images() {
	images := c.App.Group("/api/images")
	{
		images.Get("", c.ImageHandler.GetImages)
		images.Post("", c.ImageHandler.CreateImage)
		images.Get("/:id", c.ImageHandler.GetImageDetails)
		images.Put("/:id", c.ImageHandler.UpdateImage)
		images.Delete("/:id", c.ImageHandler.DeleteImage)
		images.Post("/:id/image", c.ImageHandler.UploadImageFile)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Post("", c.CategoryHandler.CreateCategory)
		categories.Get("/:id", c.CategoryHandler.GetCategoryDetails)
		categories.Put("/:id", c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Groups() {
	basics := c.App.Group("/api/basics")
	{
		basics.Get("", c.BasicsHandler.GetGroups)
		basics.Post("/:groupId/items", c.BasicsHandler.AddItem)
		basics.Put("/:groupId/items/:itemId", c.BasicsHandler.UpdateItem)
		basics.Delete("/:groupId/items/:itemId", c.BasicsHandler.DeleteItem)
	}

	recreate := c.App.Group("/api/recreate")
	{
		recreate.Get("", c.RecreateHandler.GetGroups)
		recreate.Post("/:groupId/items", c.RecreateHandler.AddItem)
		recreate.Put("/:groupId/items/:itemId", c.RecreateHandler.UpdateItem)
		recreate.Delete("/:groupId/items/:itemId", c.RecreateHandler.DeleteItem)
	}
}

func (c *Config) AiCards() {
	cards := c.App.Group("/api/aicards")
	{
		cards.Get("", c.AiCardHandler.GetAiCards)
		cards.Post("", c.AiCardHandler.CreateAiCard)
		cards.Get("/:id", c.AiCardHandler.GetAiCardDetails)
		cards.Put("/:id", c.AiCardHandler.UpdateAiCard)
		cards.Delete("/:id", c.AiCardHandler.DeleteAiCard)
	}
}

func (c *Config) Ingest() {
	c.App.Post("/addJsonData", c.IngestHandler.WriteDocument)
}
