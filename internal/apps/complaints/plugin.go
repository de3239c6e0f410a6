package complaints

import (
	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ComplaintsPlugin struct {
	storage       *services.StorageService
	notifications *services.NotificationService
	activity      *services.ActivityService
}

func New(storage *services.StorageService, notifications *services.NotificationService, activity *services.ActivityService) *ComplaintsPlugin {
	return &ComplaintsPlugin{storage: storage, notifications: notifications, activity: activity}
}

func (p *ComplaintsPlugin) ID() string { return "complaints" }

func (p *ComplaintsPlugin) Models() []interface{} {
	return []interface{}{
		&Complaint{},
		&PublicComplaint{},
	}
}

func (p *ComplaintsPlugin) handler(db *gorm.DB) *ComplaintHandler {
	svc := NewComplaintService(db, p.notifications, p.activity)
	return NewComplaintHandler(svc, p.storage)
}

func (p *ComplaintsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := p.handler(db)

	router.Post("/complaints", handler.Create)
	router.Get("/complaints", handler.ListMine)
	router.Delete("/complaints/:id", handler.Delete)
}

func (p *ComplaintsPlugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := p.handler(db)

	router.Get("/complaints", handler.ListAll)
	router.Get("/public-complaints", handler.ListPublic)
	router.Put("/complaints/:id/status", handler.UpdateStatus)
}

func (p *ComplaintsPlugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := p.handler(db)

	router.Post("/complaints", handler.CreatePublic)
}
