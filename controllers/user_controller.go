// controllers/user_controller.go
package controllers

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrisure/agrisure_backend/models"
	"github.com/agrisure/agrisure_backend/repositories"
	"github.com/agrisure/agrisure_backend/utils"
)

// UserController handles the registration record store
type UserController struct {
	store  *repositories.UserRepository
	logger *log.Logger
}

// NewUserController creates a new user controller
func NewUserController(store *repositories.UserRepository) *UserController {
	return &UserController{
		store:  store,
		logger: log.New(os.Stdout, "[USER] ", log.LstdFlags),
	}
}

// Save appends a finalized registration record. The emailVerified flag is
// accepted as sent by the client; there is no server-side proof of a prior
// verification.
func (uc *UserController) Save(c echo.Context) error {
	var record models.UserRecord
	if err := c.Bind(&record); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Invalid request body",
		})
	}

	record.Email = strings.ToLower(strings.TrimSpace(record.Email))
	if err := c.Validate(&record); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Error: "Invalid user record",
		})
	}

	if record.Timestamp == "" {
		record.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if err := uc.store.Append(record); err != nil {
		uc.logger.Printf("Failed to append record for %s: %v", utils.MaskEmail(record.Email), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Error: "Failed to save user",
		})
	}

	uc.logger.Printf("Saved %s registration for %s", record.Role, utils.MaskEmail(record.Email))
	return c.JSON(http.StatusOK, models.Response{Success: true})
}

// GetUsers returns every persisted record, unfiltered and unpaginated.
func (uc *UserController) GetUsers(c echo.Context) error {
	records, err := uc.store.ListAll()
	if err != nil {
		uc.logger.Printf("Failed to load records: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Error: "Failed to load users",
		})
	}
	return c.JSON(http.StatusOK, records)
}
