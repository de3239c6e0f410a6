package chat

import (
	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChatPlugin struct{}

func New() *ChatPlugin {
	return &ChatPlugin{}
}

func (p *ChatPlugin) ID() string { return "chat" }

func (p *ChatPlugin) Models() []interface{} {
	return []interface{}{
		&AIChatHistory{},
	}
}

func (p *ChatPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewChatService(db, cfg)
	handler := NewChatHandler(svc)

	router.Post("/ai-chat", handler.Ask)
	router.Post("/ai-chat/analyze-image", handler.AnalyzeImage)
	router.Get("/ai-chat/history", handler.History)
}
