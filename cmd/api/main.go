package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"equipmentrental/internal/config"
	"equipmentrental/internal/database"
	"equipmentrental/internal/modules/customer"
	"equipmentrental/internal/modules/docs"
	"equipmentrental/internal/modules/equipment"
	"equipmentrental/internal/modules/inventory"
	"equipmentrental/internal/modules/rental"
	"equipmentrental/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	equipmentRepo := repository.NewEquipmentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	rentalRepo := repository.NewRentalRepository(db)

	equipmentHandler := equipment.NewHandler(equipment.NewService(equipmentRepo))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo))
	inventoryHandler := inventory.NewHandler(inventory.NewService(inventoryRepo))
	rentalHandler := rental.NewHandler(rental.NewService(rentalRepo, customerRepo, equipmentRepo))
	docsHandler := docs.NewHandler()

	r := gin.Default()

	root := r.Group("")
	{
		docsHandler.RegisterRoutes(root)
		equipmentHandler.RegisterRoutes(root)
		customerHandler.RegisterRoutes(root)
		inventoryHandler.RegisterRoutes(root)
		rentalHandler.RegisterRoutes(root)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
