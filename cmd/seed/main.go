package main

import (
	"context"
	"log"

	"github.com/richxcame/fleet-admin/internal/fleet"
	"github.com/richxcame/fleet-admin/pkg/config"
	"github.com/richxcame/fleet-admin/pkg/database"
	"github.com/richxcame/fleet-admin/pkg/logger"
)

// demo fleet, inserted only into an empty vehicles table
var seedVehicles = []fleet.AddVehicleRequest{
	{BrandModel: "Toyota Corolla", Mileage: 0, DailyPrice: 30.0, MaintCostPerKM: 0.10},
	{BrandModel: "Honda Civic", Mileage: 0, DailyPrice: 32.0, MaintCostPerKM: 0.12},
	{BrandModel: "Ford Focus", Mileage: 0, DailyPrice: 28.0, MaintCostPerKM: 0.11},
	{BrandModel: "BMW 3 Series", Mileage: 0, DailyPrice: 55.0, MaintCostPerKM: 0.20},
	{BrandModel: "Audi A4", Mileage: 0, DailyPrice: 60.0, MaintCostPerKM: 0.22},
	{BrandModel: "Volkswagen Golf", Mileage: 0, DailyPrice: 29.0, MaintCostPerKM: 0.10},
	{BrandModel: "Mazda 3", Mileage: 0, DailyPrice: 31.0, MaintCostPerKM: 0.13},
	{BrandModel: "Hyundai Elantra", Mileage: 0, DailyPrice: 27.0, MaintCostPerKM: 0.09},
	{BrandModel: "Kia Forte", Mileage: 0, DailyPrice: 26.0, MaintCostPerKM: 0.08},
	{BrandModel: "Chevrolet Cruze", Mileage: 0, DailyPrice: 25.0, MaintCostPerKM: 0.07},
}

func main() {
	cfg, err := config.Load("fleet-seed")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		logger.Fatal("Failed to run migrations: " + err.Error())
	}

	pool, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database: " + err.Error())
	}
	defer database.Close(pool)

	ctx := context.Background()
	service := fleet.NewService(fleet.NewRepository(pool))

	existing, err := service.ViewInventory(ctx)
	if err != nil {
		logger.Fatal("Failed to check inventory: " + err.Error())
	}
	if len(existing) > 0 {
		logger.Info("Vehicles already present, nothing to seed")
		return
	}

	for i := range seedVehicles {
		v, err := service.AddVehicle(ctx, &seedVehicles[i])
		if err != nil {
			logger.Fatal("Failed to seed vehicle " + seedVehicles[i].BrandModel + ": " + err.Error())
		}
		logger.Info("Seeded vehicle " + v.VehicleID + " (" + v.BrandModel + ")")
	}

	logger.Info("Seeding complete")
}
