package main

import (
	"context"
	"log"

	"equipmentrental/internal/config"
	"equipmentrental/internal/database"
	"equipmentrental/internal/domain"
	"equipmentrental/internal/repository"

	"github.com/joho/godotenv"
)

// Loads a small fixture set for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (rentals and inventory reference equipment rows)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM rentals")
	db.Exec("DELETE FROM inventory")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM equipment")

	ctx := context.Background()
	equipmentRepo := repository.NewEquipmentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	equipmentRows := []domain.Equipment{
		{Name: "Phillips Screwdriver", Price: 1.00, Category: "Hand Tools", Description: "A 6-inch, red, Phillips screw driver."},
		{Name: "Pressure Washer", Price: 25.00, Category: "Power Tools", Description: "A 2000 PSI electric pressure washer."},
		{Name: "Extension Ladder", Price: 12.50, Category: "Ladders", Description: "A 24-foot aluminum extension ladder."},
	}
	for i := range equipmentRows {
		if err := equipmentRepo.Create(ctx, &equipmentRows[i]); err != nil {
			log.Fatal("Seeding equipment failed:", err)
		}
	}

	customerRows := []domain.Customer{
		{FirstName: "John", LastName: "Dewey", Address: "123 South St.", City: "Somewhere", State: "MI", Phone: "123-456-7890"},
		{FirstName: "Jane", LastName: "Doe", Address: "444 North St.", City: "Elsewhere", State: "OH", Phone: "321-456-7890"},
	}
	for i := range customerRows {
		if err := customerRepo.Create(ctx, &customerRows[i]); err != nil {
			log.Fatal("Seeding customers failed:", err)
		}
	}

	for _, e := range equipmentRows {
		inv := domain.Inventory{EquipmentID: e.ID, Total: 50, Rented: 0}
		if err := inventoryRepo.Create(ctx, &inv); err != nil {
			log.Fatal("Seeding inventory failed:", err)
		}
	}

	log.Printf("Seeded %d equipment, %d customers, %d inventory rows",
		len(equipmentRows), len(customerRows), len(equipmentRows))
}
