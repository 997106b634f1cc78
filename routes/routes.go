package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrisure/agrisure_backend/controllers"
)

// SetupRoutes registers the public API surface consumed by the web client.
func SetupRoutes(e *echo.Echo, otpController *controllers.OTPController, userController *controllers.UserController) {
	e.Match([]string{http.MethodGet, http.MethodHead}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "AgriSure Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	e.POST("/send-otp", otpController.SendOTP)
	e.POST("/verify-otp", otpController.VerifyOTP)
	e.POST("/save", userController.Save)
	e.GET("/users", userController.GetUsers)
}
