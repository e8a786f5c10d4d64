package branches

import (
	"os"
	"testing"
	"time"

	"github.com/smoralesdev/franchise-backend/pkg/db"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	"github.com/smoralesdev/franchise-backend/pkg/resilience"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("FRANCHISE_DB_DSN")
	if dsn == "" {
		t.Skip("FRANCHISE_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func newTestPolicy(t *testing.T) *resilience.Policy {
	t.Helper()

	policy, err := resilience.New(resilience.Config{
		Timeout:        5 * time.Second,
		MaxConcurrent:  5,
		WindowSize:     10,
		FailureRatio:   0.5,
		OpenCooldown:   time.Second,
		HalfOpenProbes: 2,
	}, resilience.WithIgnoredErrors(db.IsNotFound))
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}
	return policy
}

func mustCreateTestFranchise(t *testing.T, tx *gorm.DB, name string) *models.Franchise {
	t.Helper()

	now := time.Now().UTC()
	franchise := &models.Franchise{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := tx.Save(franchise).Error; err != nil {
		t.Fatalf("create test franchise: %v", err)
	}
	return franchise
}
