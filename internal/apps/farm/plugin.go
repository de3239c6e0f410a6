package farm

import (
	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FarmPlugin struct{}

func New() *FarmPlugin {
	return &FarmPlugin{}
}

func (p *FarmPlugin) ID() string { return "farm" }

func (p *FarmPlugin) Models() []interface{} {
	return []interface{}{
		&Field{},
		&Harvest{},
		&Alert{},
	}
}

func (p *FarmPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewFarmService(db)
	handler := NewFarmHandler(svc)

	router.Post("/fields", handler.CreateField)
	router.Get("/fields", handler.ListFields)
	router.Put("/fields/:id", handler.UpdateField)
	router.Delete("/fields/:id", handler.DeleteField)

	router.Post("/harvests", handler.CreateHarvest)
	router.Get("/harvests", handler.ListHarvests)
	router.Put("/harvests/:id", handler.UpdateHarvest)
	router.Delete("/harvests/:id", handler.DeleteHarvest)

	router.Post("/alerts", handler.CreateAlert)
	router.Get("/alerts", handler.ListAlerts)
	router.Delete("/alerts/:id", handler.DeleteAlert)
}
