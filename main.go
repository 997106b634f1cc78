package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/agrisure/agrisure_backend/config"
	"github.com/agrisure/agrisure_backend/controllers"
	"github.com/agrisure/agrisure_backend/middleware"
	"github.com/agrisure/agrisure_backend/repositories"
	"github.com/agrisure/agrisure_backend/routes"
	"github.com/agrisure/agrisure_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Open the durable collections
	dataDir := config.DataDir()
	userRepo, err := repositories.NewUserRepository(dataDir)
	if err != nil {
		log.Fatal("Failed to open user record store:", err)
	}
	otpRepo, err := repositories.NewOTPRepository(dataDir)
	if err != nil {
		log.Fatal("Failed to open OTP ledger:", err)
	}

	mailer := services.NewMailService(config.LoadSMTPConfig())
	if !mailer.Enabled() {
		log.Println("SMTP not configured, running in dev mode: OTP codes are logged, not delivered")
	}

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(echoMiddleware.Secure())

	// Opt-in: unlimited verification attempts are part of the client contract
	if os.Getenv("RATE_LIMIT_ENABLED") == "true" {
		e.Use(middleware.NewRateLimiter().RateLimit())
	}

	// Initialize controllers
	otpController := controllers.NewOTPController(otpRepo, mailer)
	userController := controllers.NewUserController(userRepo)

	routes.SetupRoutes(e, otpController, userController)

	// Start server
	e.Logger.Fatal(e.Start(":" + config.Port()))
}
