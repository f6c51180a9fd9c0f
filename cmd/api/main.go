package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DesVallees/VAQ-sub000/internal/handler"
	"github.com/DesVallees/VAQ-sub000/internal/middleware"
	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/repository"
	"github.com/DesVallees/VAQ-sub000/internal/service"
	"github.com/DesVallees/VAQ-sub000/internal/ws"
	"github.com/DesVallees/VAQ-sub000/pkg/database"
	"github.com/DesVallees/VAQ-sub000/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Product{},
		&model.Appointment{},
		&model.Article{},
		&model.Location{},
		&model.Pediatrician{},
		&model.User{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup image storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	store, err := storage.NewDiskStore(uploadDir, "/uploads")
	if err != nil {
		log.Fatal("Failed to initialize upload storage: ", err)
	}

	// 5. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	pediatricianRepo := repository.NewPediatricianRepo(db)
	userRepo := repository.NewUserRepo(db)

	productService := service.NewProductService(productRepo, pediatricianRepo, store, wsHub)
	appointmentService := service.NewAppointmentService(appointmentRepo, wsHub)
	articleService := service.NewArticleService(articleRepo)
	locationService := service.NewLocationService(locationRepo)
	pediatricianService := service.NewPediatricianService(pediatricianRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo)
	dashboardService := service.NewDashboardService(productRepo, appointmentRepo)

	productHandler := handler.NewProductHandler(productService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	articleHandler := handler.NewArticleHandler(articleService)
	locationHandler := handler.NewLocationHandler(locationService)
	pediatricianHandler := handler.NewPediatricianHandler(pediatricianService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "VAQ+ Admin API v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Uploaded images are served statically; ImagePath keys resolve
	// against this route.
	app.Static("/uploads", uploadDir)

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// Every admin screen sits behind auth + the admin flag.
	protected := api.Group("", middleware.RequireAuth(userRepo), middleware.RequireAdmin())

	// Dashboard
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Product catalog
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)
	protected.Post("/products/:id/image", productHandler.UploadImage)

	// Appointments
	protected.Get("/appointments", appointmentHandler.GetAppointments)
	protected.Get("/appointments/:id", appointmentHandler.GetAppointment)
	protected.Post("/appointments", appointmentHandler.CreateAppointment)
	protected.Put("/appointments/:id", appointmentHandler.UpdateAppointment)
	protected.Delete("/appointments/:id", appointmentHandler.DeleteAppointment)

	// Articles
	protected.Get("/articles", articleHandler.GetArticles)
	protected.Get("/articles/:id", articleHandler.GetArticle)
	protected.Post("/articles", articleHandler.CreateArticle)
	protected.Put("/articles/:id", articleHandler.UpdateArticle)
	protected.Delete("/articles/:id", articleHandler.DeleteArticle)

	// Locations
	protected.Get("/locations", locationHandler.GetLocations)
	protected.Get("/locations/:id", locationHandler.GetLocation)
	protected.Post("/locations", locationHandler.CreateLocation)
	protected.Put("/locations/:id", locationHandler.UpdateLocation)
	protected.Delete("/locations/:id", locationHandler.DeleteLocation)

	// Pediatricians
	protected.Get("/pediatricians", pediatricianHandler.GetPediatricians)
	protected.Get("/pediatricians/:id", pediatricianHandler.GetPediatrician)
	protected.Post("/pediatricians", pediatricianHandler.CreatePediatrician)
	protected.Put("/pediatricians/:id", pediatricianHandler.UpdatePediatrician)
	protected.Delete("/pediatricians/:id", pediatricianHandler.DeletePediatrician)

	// Users
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", userHandler.CreateUser)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if it doesn't exist yet.
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@vaqmas.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrador",
		IsAdmin:  true,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
