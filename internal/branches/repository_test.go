package branches

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
)

func TestRepositoryBranchFlow(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx, newTestPolicy(t))
	ctx := context.Background()

	franchise := mustCreateTestFranchise(t, tx, "branch-repo-franchise")

	now := time.Now().UTC()
	created, err := repo.Save(ctx, &models.Branch{
		Name:        "branch-repo-downtown",
		FranchiseID: franchise.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("save branch: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected branch id to be generated")
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.FranchiseID != franchise.ID {
		t.Fatalf("unexpected branch: %+v", found)
	}

	found.Name = "branch-repo-uptown"
	updated, err := repo.Save(ctx, found)
	if err != nil {
		t.Fatalf("update branch: %v", err)
	}
	if updated.Name != "branch-repo-uptown" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}

	missing, err := repo.FindByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("find absent id: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for absent id")
	}
}
