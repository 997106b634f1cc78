// repositories/otp_repository.go
package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agrisure/agrisure_backend/models"
	"github.com/agrisure/agrisure_backend/utils"
)

// OTPRepository is the ledger of outstanding one-time passcodes. Entries
// live in memory and are mirrored to disk after every mutation. Codes never
// expire, and repeated sends stack entries for the same email.
type OTPRepository struct {
	path    string
	mu      sync.Mutex
	entries []models.OtpEntry
}

// NewOTPRepository loads any outstanding entries from disk, creating an
// empty ledger file if none exists.
func NewOTPRepository(dataDir string) (*OTPRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &OTPRepository{path: filepath.Join(dataDir, "otps.json")}

	content, err := os.ReadFile(repo.path)
	if os.IsNotExist(err) {
		if err := writeJSONFile(repo.path, []models.OtpEntry{}); err != nil {
			return nil, err
		}
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read OTP ledger: %w", err)
	}
	if err := json.Unmarshal(content, &repo.entries); err != nil {
		return nil, fmt.Errorf("failed to parse OTP ledger: %w", err)
	}
	return repo, nil
}

// Issue generates a fresh 6-digit code for the email and persists the
// ledger. Older entries for the same email stay valid.
func (r *OTPRepository) Issue(email, role string) (string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, models.OtpEntry{
		ID:       uuid.New().String(),
		Email:    email,
		OTP:      code,
		Role:     role,
		IssuedAt: time.Now().UnixMilli(),
	})
	if err := writeJSONFile(r.path, r.entries); err != nil {
		r.entries = r.entries[:len(r.entries)-1]
		return "", err
	}
	return code, nil
}

// Consume removes the first entry matching email and code. It returns false
// and leaves the ledger untouched when nothing matches, so further attempts
// stay possible. A consumed code cannot be reused.
func (r *OTPRepository) Consume(email, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, entry := range r.entries {
		if entry.Email == email && entry.OTP == code {
			remaining := make([]models.OtpEntry, 0, len(r.entries)-1)
			remaining = append(remaining, r.entries[:i]...)
			remaining = append(remaining, r.entries[i+1:]...)
			if err := writeJSONFile(r.path, remaining); err != nil {
				return false, err
			}
			r.entries = remaining
			return true, nil
		}
	}
	return false, nil
}

// Outstanding returns the number of unconsumed entries for an email.
func (r *OTPRepository) Outstanding(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, entry := range r.entries {
		if entry.Email == email {
			n++
		}
	}
	return n
}
