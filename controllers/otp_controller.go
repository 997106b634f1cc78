// controllers/otp_controller.go
package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/agrisure/agrisure_backend/models"
	"github.com/agrisure/agrisure_backend/repositories"
	"github.com/agrisure/agrisure_backend/services"
	"github.com/agrisure/agrisure_backend/utils"
)

// OTPController handles OTP issuance and verification
type OTPController struct {
	ledger *repositories.OTPRepository
	mailer *services.MailService
	logger *log.Logger
}

// NewOTPController creates a new OTP controller
func NewOTPController(ledger *repositories.OTPRepository, mailer *services.MailService) *OTPController {
	return &OTPController{
		ledger: ledger,
		mailer: mailer,
		logger: log.New(os.Stdout, "[OTP] ", log.LstdFlags),
	}
}

// SendOTP issues a fresh code for the email and attempts delivery.
func (oc *OTPController) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Invalid request body",
		})
	}

	req.Role = utils.SanitizeInput(req.Role)
	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Email required",
		})
	}

	code, err := oc.ledger.Issue(email, req.Role)
	if err != nil {
		oc.logger.Printf("Failed to issue OTP for %s: %v", utils.MaskEmail(email), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Error: "Failed to generate OTP",
		})
	}

	if !oc.mailer.Enabled() {
		// Dev mode: the code is only readable from the server log.
		oc.logger.Printf("DEV MODE: OTP for %s is %s", email, code)
		return c.JSON(http.StatusOK, models.Response{
			Success: true,
			DevMode: true,
			Data:    map[string]string{"email": utils.MaskEmail(email)},
		})
	}

	if err := oc.mailer.SendOTP(email, code, req.Role); err != nil {
		// The entry was already issued, so a code obtained out-of-band
		// stays verifiable.
		oc.logger.Printf("Failed to deliver OTP to %s: %v", utils.MaskEmail(email), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Error: "Failed to send OTP email",
		})
	}

	oc.logger.Printf("OTP sent to %s", utils.MaskEmail(email))
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    map[string]string{"email": utils.MaskEmail(email)},
	})
}

// VerifyOTP consumes an outstanding code. A matched entry is removed and
// cannot be verified again; a mismatch leaves the ledger unchanged.
func (oc *OTPController) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Invalid request body",
		})
	}

	req.OTP = utils.SanitizeInput(req.OTP)
	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Email required",
		})
	}
	if req.OTP == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "OTP required",
		})
	}

	ok, err := oc.ledger.Consume(email, req.OTP)
	if err != nil {
		oc.logger.Printf("Ledger error verifying OTP for %s: %v", utils.MaskEmail(email), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Error: "Failed to verify OTP",
		})
	}
	if !ok {
		oc.logger.Printf("Invalid OTP for %s", utils.MaskEmail(email))
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Invalid OTP",
		})
	}

	return c.JSON(http.StatusOK, models.Response{Success: true})
}
