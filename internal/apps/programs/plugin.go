package programs

import (
	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgramsPlugin struct{}

func New() *ProgramsPlugin {
	return &ProgramsPlugin{}
}

func (p *ProgramsPlugin) ID() string { return "programs" }

func (p *ProgramsPlugin) Models() []interface{} {
	return []interface{}{
		&Program{},
		&Donation{},
	}
}

func (p *ProgramsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	programs := NewProgramService(db)
	donations := NewDonationService(db)
	handler := NewProgramHandler(programs, donations)

	router.Post("/programs", handler.Create)
	router.Get("/programs", handler.List)
	router.Get("/programs/:id", handler.Get)
	router.Put("/programs/:id", handler.Update)
	router.Delete("/programs/:id", handler.Delete)
	router.Get("/programs/:id/donations", handler.ListProgramDonations)

	router.Post("/donations", handler.Donate)
	router.Get("/donations", handler.ListDonations)
}
