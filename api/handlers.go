package api

import (
	"github.com/folioforge/portfolio-backend/autosave"
	"github.com/folioforge/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store previewCache, scheduler *autosave.Scheduler) *routeHandlers {
	return &routeHandlers{
		portfolioHandler: newPortfolioHandler(database.PortfolioRepo(), scheduler),
		previewHandler:   newPreviewHandler(store),
		wizardHandler:    newWizardHandler(),
	}
}
