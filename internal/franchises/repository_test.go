package franchises

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
)

func TestRepositoryFranchiseFlow(t *testing.T) {
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

	now := time.Now().UTC()
	created, err := repo.Save(ctx, &models.Franchise{
		Name:      "repo-test-franchise",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("save franchise: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected franchise id to be generated")
	}

	exists, err := repo.ExistsByName(ctx, "repo-test-franchise")
	if err != nil {
		t.Fatalf("exists by name: %v", err)
	}
	if !exists {
		t.Fatal("expected franchise to exist by name")
	}

	exists, err = repo.ExistsByName(ctx, "no-such-franchise")
	if err != nil {
		t.Fatalf("exists by name: %v", err)
	}
	if exists {
		t.Fatal("expected no match for unknown name")
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.Name != "repo-test-franchise" {
		t.Fatalf("unexpected franchise: %+v", found)
	}

	missing, err := repo.FindByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("find absent id: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for absent id")
	}
}

func TestRepositoryDuplicateNameIsConflict(t *testing.T) {
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

	now := time.Now().UTC()
	if _, err := repo.Save(ctx, &models.Franchise{Name: "repo-dup-franchise", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("save franchise: %v", err)
	}

	_, err := repo.Save(ctx, &models.Franchise{Name: "repo-dup-franchise", CreatedAt: now, UpdatedAt: now})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on duplicate name, got %v", err)
	}
}
