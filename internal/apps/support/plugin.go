package support

import (
	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupportPlugin struct {
	notifications *services.NotificationService
	activity      *services.ActivityService
}

func New(notifications *services.NotificationService, activity *services.ActivityService) *SupportPlugin {
	return &SupportPlugin{notifications: notifications, activity: activity}
}

func (p *SupportPlugin) ID() string { return "support" }

func (p *SupportPlugin) Models() []interface{} {
	return []interface{}{
		&SupportRequest{},
	}
}

func (p *SupportPlugin) handler(db *gorm.DB) *SupportHandler {
	svc := NewSupportService(db, p.notifications, p.activity)
	return NewSupportHandler(svc)
}

func (p *SupportPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := p.handler(db)

	router.Post("/support-requests", handler.Create)
	router.Get("/support-requests", handler.ListMine)
	router.Put("/support-requests/:id", handler.Update)
	router.Delete("/support-requests/:id", handler.Delete)
}

func (p *SupportPlugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := p.handler(db)

	router.Get("/support-requests", handler.ListAll)
	router.Put("/support-requests/:id/status", handler.UpdateStatus)
}
