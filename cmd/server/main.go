// Command server runs the GST billing API.
//
// @title        GST Billing API
// @version      1.0
// @description  GST invoice billing, inventory, and ledger service
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"log"

	"gstbilling/internal/config"
	"gstbilling/internal/email/noop"
	"gstbilling/internal/email/ses"
	"gstbilling/internal/handler"
	"gstbilling/internal/port"
	"gstbilling/internal/repository/postgres"
	"gstbilling/internal/router"
	"gstbilling/internal/service"
	s3storage "gstbilling/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	profileRepo := postgres.NewProfileRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	productRepo := postgres.NewProductRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	inventoryRepo := postgres.NewInventoryRepo(db)
	bookRepo := postgres.NewBookRepo(db)

	// Initialize email sender
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize export archive storage
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, profileRepo, cfg.JWT)
	profileSvc := service.NewProfileService(profileRepo)
	customerSvc := service.NewCustomerService(customerRepo, bookRepo)
	productSvc := service.NewProductService(productRepo, inventoryRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, inventoryRepo, bookRepo, profileRepo, sender)
	inventorySvc := service.NewInventoryService(inventoryRepo, productRepo)
	bookSvc := service.NewBookService(bookRepo, invoiceRepo)
	reportSvc := service.NewReportService(invoiceRepo, customerRepo, profileRepo, storage)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	productH := handler.NewProductHandler(productSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	bookH := handler.NewBookHandler(bookSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, profileH, customerH, productH, invoiceH, inventoryH, bookH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
