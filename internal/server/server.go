package server

import (
	"github.com/blastmusic247/blast-gear-full/internal/handler"
	authmw "github.com/blastmusic247/blast-gear-full/internal/middleware"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo *echo.Echo

	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	promoHandler   *handler.PromoHandler
	paymentHandler *handler.PaymentHandler
	contactHandler *handler.ContactHandler
	galleryHandler *handler.GalleryHandler
	uploadHandler  *handler.UploadHandler

	requireAdmin echo.MiddlewareFunc
}

func NewServer(
	authService service.AuthService,
	catalogService service.CatalogService,
	orderService service.OrderService,
	promoService service.PromoService,
	paymentService service.PaymentService,
	contactService service.ContactService,
	galleryService service.GalleryService,
	uploadService service.UploadService,
	uploadDir string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Static("/uploads", uploadDir)

	s := &Server{
		echo:           e,
		authHandler:    handler.NewAuthHandler(authService),
		productHandler: handler.NewProductHandler(catalogService),
		orderHandler:   handler.NewOrderHandler(orderService),
		promoHandler:   handler.NewPromoHandler(promoService),
		paymentHandler: handler.NewPaymentHandler(paymentService),
		contactHandler: handler.NewContactHandler(contactService),
		galleryHandler: handler.NewGalleryHandler(galleryService),
		uploadHandler:  handler.NewUploadHandler(uploadService),
		requireAdmin:   authmw.RequireAdmin(authService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public storefront --------
	api.GET("/products", s.productHandler.List)
	api.GET("/products/:id", s.productHandler.Get)
	api.POST("/orders", s.orderHandler.Create)
	api.GET("/orders/:id", s.orderHandler.Get)
	api.POST("/validate-promo", s.promoHandler.Validate)
	api.POST("/apply-promo/:code", s.promoHandler.Apply)
	api.POST("/create-payment-intent", s.paymentHandler.CreatePaymentIntent)
	api.POST("/contact", s.contactHandler.Submit)
	api.POST("/upload-image", s.uploadHandler.UploadImage)
	api.GET("/gallery-images", s.galleryHandler.List)

	// -------- admin --------
	api.POST("/admin/login", s.authHandler.Login)

	admin := api.Group("/admin", s.requireAdmin)

	admin.GET("/products", s.productHandler.List)
	admin.POST("/products", s.productHandler.Create)
	admin.PUT("/products/:id", s.productHandler.Update)
	admin.DELETE("/products/:id", s.productHandler.Delete)

	admin.GET("/orders", s.orderHandler.List)
	admin.GET("/orders/:id", s.orderHandler.Get)
	admin.PUT("/orders/:id/status", s.orderHandler.UpdateStatus)
	admin.POST("/orders/:id/refund", s.orderHandler.Refund)
	admin.DELETE("/orders/:id", s.orderHandler.Delete)

	admin.POST("/promo-codes", s.promoHandler.Create)
	admin.GET("/promo-codes", s.promoHandler.List)
	admin.PUT("/promo-codes/:id", s.promoHandler.Update)
	admin.DELETE("/promo-codes/:id", s.promoHandler.Delete)

	admin.POST("/gallery-images", s.galleryHandler.Create)
	admin.POST("/gallery-images/bulk-upload", s.galleryHandler.BulkUpload)
	admin.PUT("/gallery-images/:id", s.galleryHandler.Update)
	admin.DELETE("/gallery-images/:id", s.galleryHandler.Delete)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
