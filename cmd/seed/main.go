package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"equiprent-backend/internal/config"
	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository/postgres"
	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	adminPassword := flag.String("admin-password", "admin123", "Password for the seeded admin user")
	demo := flag.Bool("demo", false, "Also seed demo customers, equipment and rentals")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	store := postgres.NewStore(db)

	// Seeding is a one-time bootstrap; bail out if any user exists.
	users, err := store.UserRepository.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}
	if len(users) > 0 {
		logger.Info("Users already present, skipping seed", "count", len(users))
		return
	}

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionExpiryMinutes)*time.Minute,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)

	admin, err := authSvc.CreateUser(ctx, "admin", *adminPassword, "Administrator", "admin@example.com", domain.UserRoleAdmin)
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	logger.Info("Created admin user", "user_id", admin.ID, "username", admin.Username)

	if !*demo {
		return
	}

	waLinks := service.NewWhatsAppLinkBuilder(cfg.WhatsApp.CountryCode)
	customerSvc := service.NewCustomerService(store.CustomerRepository, waLinks)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CustomerRepository, store.EquipmentRepository)

	customer := &domain.Customer{
		Name:         "Maria Souza",
		Email:        "maria.souza@example.com",
		Phone:        "(11) 98765-4321",
		Document:     "123.456.789-09",
		DocumentType: domain.DocumentTypeCPF,
		Address: domain.Address{
			Street:     "Rua das Flores",
			Number:     "120",
			District:   "Centro",
			City:       "Sao Paulo",
			PostalCode: "01000-000",
		},
	}
	if err := customerSvc.CreateCustomer(ctx, customer); err != nil {
		log.Fatalf("Failed to create demo customer: %v", err)
	}

	equipment := &domain.Equipment{
		Name:        "Concrete Mixer 400L",
		Category:    "Construction",
		Description: "400 liter electric concrete mixer",
		DailyRate:   decimal.RequireFromString("25.00"),
		TieredPrices: domain.TieredPrices{
			{Days: 30, Price: decimal.RequireFromString("500.00")},
		},
		Stock: domain.Stock{Total: 3, Available: 3},
	}
	if err := equipmentSvc.CreateEquipment(ctx, equipment); err != nil {
		log.Fatalf("Failed to create demo equipment: %v", err)
	}

	rental, err := rentalSvc.CreateRental(ctx, customer.ID, equipment.ID, time.Now().UTC(), 7, "Demo rental")
	if err != nil {
		log.Fatalf("Failed to create demo rental: %v", err)
	}

	logger.Info("Seeded demo data",
		"customer_id", customer.ID,
		"equipment_id", equipment.ID,
		"rental_id", rental.ID,
		"rental_total", rental.TotalPrice.StringFixed(2))
}
