// Command planprices is a one-off maintenance tool that overwrites the seeded
// plan prices in place. Normal operation never updates plans.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tyforge/tyforge-backend/internal/config"
	"github.com/tyforge/tyforge-backend/internal/database"
	"github.com/tyforge/tyforge-backend/internal/logging"
	"github.com/tyforge/tyforge-backend/internal/models"
	"github.com/tyforge/tyforge-backend/internal/services"
)

var newPrices = map[string]int{
	"basic_plan":    1000,
	"standard_plan": 5000,
	"premium_plan":  9000,
}

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	catalog := services.NewCatalogService(database.DB)
	if err := catalog.UpdatePlanPrices(newPrices); err != nil {
		slog.Error("price update failed", "error", err)
		os.Exit(1)
	}

	var plans []models.Plan
	if err := database.DB.Order("price ASC").Find(&plans).Error; err != nil {
		slog.Error("verification query failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("Updated plan prices:")
	for _, p := range plans {
		fmt.Printf("%s: %s - %d\n", p.ID, p.Name, p.Price)
	}
}
