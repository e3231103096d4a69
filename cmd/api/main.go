package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blastmusic247/blast-gear-full/internal/client"
	"github.com/blastmusic247/blast-gear-full/internal/config"
	"github.com/blastmusic247/blast-gear-full/internal/repository"
	"github.com/blastmusic247/blast-gear-full/internal/server"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseDSN)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	recaptchaClient := client.NewRecaptchaClient(cfg.Captcha.RecaptchaSecret)
	hcaptchaClient := client.NewHCaptchaClient(cfg.Captcha.HCaptchaSecret)
	mailClient := client.NewMailClient(&cfg.SMTP, cfg.Admin.Email)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authService := service.NewAuthService(
		cfg.Admin, cfg.JWT,
		recaptchaClient,
		cfg.Environment.IsDevelopment(),
	)
	catalogService := service.NewCatalogService(productRepo)
	orderService := service.NewOrderService(orderRepo, mailClient)
	promoService := service.NewPromoService(promoRepo)
	paymentService := service.NewPaymentService(stripeClient)
	contactService := service.NewContactService(
		contactRepo,
		hcaptchaClient,
		cfg.Captcha.HCaptchaSecret != "",
	)
	uploadService := service.NewUploadService(cfg.UploadDir)
	galleryService := service.NewGalleryService(galleryRepo, uploadService)

	if err := catalogService.SeedInitialProducts(context.Background()); err != nil {
		log.Println("seed initial products:", err)
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		authService,
		catalogService,
		orderService,
		promoService,
		paymentService,
		contactService,
		galleryService,
		uploadService,
		cfg.UploadDir,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
