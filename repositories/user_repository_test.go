package repositories_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisure/agrisure_backend/models"
	"github.com/agrisure/agrisure_backend/repositories"
)

func TestNewUserRepositoryCreatesEmptyCollection(t *testing.T) {
	dir := t.TempDir()

	repo, err := repositories.NewUserRepository(dir)
	require.NoError(t, err)

	records, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	content, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(content))
}

func TestAppendRoundTrip(t *testing.T) {
	repo, err := repositories.NewUserRepository(t.TempDir())
	require.NoError(t, err)

	record := models.UserRecord{
		Role:          models.RoleBank,
		ID:            "B1",
		CompanyName:   "First Agri Bank",
		Email:         "a@b.com",
		Password:      "x",
		EmailVerified: true,
		Timestamp:     "2026-08-31T10:00:00Z",
	}
	require.NoError(t, repo.Append(record))

	records, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
}

func TestAppendIsAdditive(t *testing.T) {
	repo, err := repositories.NewUserRepository(t.TempDir())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		err := repo.Append(models.UserRecord{
			Role:     models.RoleFarmer,
			Name:     fmt.Sprintf("Farmer %d", i),
			Email:    fmt.Sprintf("farmer%d@example.com", i),
			Password: "secret",
		})
		require.NoError(t, err)
	}

	records, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i, record := range records {
		assert.Equal(t, fmt.Sprintf("farmer%d@example.com", i), record.Email)
	}
}

func TestAppendAllowsDuplicateIdentities(t *testing.T) {
	repo, err := repositories.NewUserRepository(t.TempDir())
	require.NoError(t, err)

	record := models.UserRecord{
		Role:     models.RoleInsurance,
		ID:       "INS-1",
		Email:    "dup@example.com",
		Password: "secret",
	}
	require.NoError(t, repo.Append(record))
	require.NoError(t, repo.Append(record))

	records, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecordsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	repo, err := repositories.NewUserRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Append(models.UserRecord{
		Role:     models.RoleFarmer,
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	}))

	reopened, err := repositories.NewUserRepository(dir)
	require.NoError(t, err)

	records, err := reopened.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "asha@example.com", records[0].Email)
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	repo, err := repositories.NewUserRepository(t.TempDir())
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Append(models.UserRecord{
				Role:     models.RoleFarmer,
				Name:     fmt.Sprintf("Farmer %d", i),
				Email:    fmt.Sprintf("farmer%d@example.com", i),
				Password: "secret",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, records, n)

	seen := make(map[string]bool)
	for _, record := range records {
		seen[record.Email] = true
	}
	assert.Len(t, seen, n)
}
